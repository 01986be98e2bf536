package portfolio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestPublishedPayloadFallsBackWithoutStore(t *testing.T) {
	c := NewCatalog(nil, newFakeObjectStore())

	p := c.PublishedPayload()
	if p.Live {
		t.Error("payload without a store must not be live")
	}
	if len(p.Sections) != 7 || len(p.Skills) != 14 {
		t.Errorf("fallback shape = %d sections / %d skills, want 7/14", len(p.Sections), len(p.Skills))
	}
}

func TestPublishedPayloadLive(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())

	if _, err := c.CreateSection("Intro", "", "Hello", 1, true); err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}
	if _, err := c.CreateSection("Hidden", "hidden", "", 2, false); err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}

	p := c.PublishedPayload()
	if !p.Live {
		t.Error("payload from a live store must be marked live")
	}
	if len(p.Sections) != 1 {
		t.Fatalf("published sections = %d, want 1", len(p.Sections))
	}
	if p.Sections[0].Slug != "intro" {
		t.Errorf("slug = %q, want intro (derived from title)", p.Sections[0].Slug)
	}
}

func TestPublishedPayloadFallsBackOnReadError(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())
	s.Close()

	p := c.PublishedPayload()
	if p.Live {
		t.Error("payload after a read failure must not be live")
	}
	if len(p.Sections) != 7 {
		t.Errorf("expected fallback sections after read failure, got %d", len(p.Sections))
	}
}

func TestAllSectionsNeverFallsBack(t *testing.T) {
	c := NewCatalog(nil, newFakeObjectStore())
	if got := c.AllSections(); len(got) != 0 {
		t.Errorf("admin listing without a store = %d sections, want 0", len(got))
	}

	s := setupTestStore(t)
	c = NewCatalog(s, newFakeObjectStore())
	s.Close()
	if got := c.AllSections(); len(got) != 0 {
		t.Errorf("admin listing after read failure = %d sections, want 0", len(got))
	}
}

func TestWritesRequireBackend(t *testing.T) {
	c := NewCatalog(nil, newFakeObjectStore())

	if _, err := c.CreateSection("X", "", "", 1, true); err != ErrNotConfigured {
		t.Errorf("CreateSection = %v, want ErrNotConfigured", err)
	}
	if err := c.UpdateSectionContent("id", "t", "d", nil); err != ErrNotConfigured {
		t.Errorf("UpdateSectionContent = %v, want ErrNotConfigured", err)
	}
	if _, err := c.CreateSkill("Figma", SkillTool, 1); err != ErrNotConfigured {
		t.Errorf("CreateSkill = %v, want ErrNotConfigured", err)
	}
	if err := c.DeleteSkill("id"); err != ErrNotConfigured {
		t.Errorf("DeleteSkill = %v, want ErrNotConfigured", err)
	}
	if err := c.DeleteImage("id", "http://x/object/public/portfolio-images/a/b.jpg"); err != ErrNotConfigured {
		t.Errorf("DeleteImage = %v, want ErrNotConfigured", err)
	}
	results := c.UploadImages("sec", []UploadFile{{Name: "a.png", Data: []byte("x")}}, 0, "", "")
	if len(results) != 1 || results[0].Err != ErrNotConfigured {
		t.Errorf("UploadImages results = %+v, want single ErrNotConfigured", results)
	}
}

func TestUpdateSectionContentReplacesBlocks(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())

	sec, err := c.CreateSection("Work", "work", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}
	if err := c.UpdateSectionContent(sec.ID, "Work", "", []ContentBlockInput{
		{Heading: "a"}, {Heading: "b"}, {Heading: "c"},
	}); err != nil {
		t.Fatalf("UpdateSectionContent failed: %v", err)
	}

	if err := c.UpdateSectionContent(sec.ID, "Work v2", "desc", []ContentBlockInput{
		{Heading: "x", BodyText: "one"}, {Heading: "y", BodyText: "two"},
	}); err != nil {
		t.Fatalf("UpdateSectionContent failed: %v", err)
	}

	got, err := s.GetSectionBySlug("work")
	if err != nil {
		t.Fatalf("GetSectionBySlug failed: %v", err)
	}
	if got.Title != "Work v2" || got.Description != "desc" {
		t.Errorf("meta = %q/%q, want Work v2/desc", got.Title, got.Description)
	}
	if len(got.Content) != 2 {
		t.Fatalf("blocks = %d, want 2 (old blocks replaced)", len(got.Content))
	}
	if got.Content[0].Heading != "x" || got.Content[1].Heading != "y" {
		t.Errorf("blocks = [%s %s], want [x y]", got.Content[0].Heading, got.Content[1].Heading)
	}

	// Empty submission clears all blocks.
	if err := c.UpdateSectionContent(sec.ID, "Work v2", "desc", nil); err != nil {
		t.Fatalf("UpdateSectionContent failed: %v", err)
	}
	got, _ = s.GetSectionBySlug("work")
	if len(got.Content) != 0 {
		t.Errorf("blocks after empty update = %d, want 0", len(got.Content))
	}
}

func TestReplaceContentInterimStateHasZeroBlocks(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())

	sec, err := c.CreateSection("Work", "work", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}
	if err := c.UpdateSectionContent(sec.ID, "Work", "", []ContentBlockInput{
		{Heading: "a"}, {Heading: "b"},
	}); err != nil {
		t.Fatalf("UpdateSectionContent failed: %v", err)
	}

	// The replace sequence is meta update, delete, insert, with no
	// transaction. Stopping after the delete step shows the observable
	// interim state: the section exists with zero blocks.
	if err := s.UpdateSectionMeta(sec.ID, "Work", ""); err != nil {
		t.Fatalf("UpdateSectionMeta failed: %v", err)
	}
	if err := s.DeleteSectionContent(sec.ID); err != nil {
		t.Fatalf("DeleteSectionContent failed: %v", err)
	}

	got, err := s.GetSectionBySlug("work")
	if err != nil {
		t.Fatalf("GetSectionBySlug failed: %v", err)
	}
	if len(got.Content) != 0 {
		t.Errorf("interim blocks = %d, want 0 (delete completed, insert pending)", len(got.Content))
	}
}

func TestUpdateSectionContentUnknownSection(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())

	err := c.UpdateSectionContent("missing", "t", "d", []ContentBlockInput{{Heading: "a"}})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSectionContent(missing) = %v, want wrapped ErrNotFound", err)
	}
}

func TestUploadImagesBatchIsIndependent(t *testing.T) {
	s := setupTestStore(t)
	objects := newFakeObjectStore()
	c := NewCatalog(s, objects)

	sec, err := c.CreateSection("Gallery", "gallery", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}

	pngData := testPNG(t, 20, 10)
	calls := 0
	objects.uploadErr = func(path string) error {
		calls++
		if calls == 2 {
			return errors.New("disk full")
		}
		return nil
	}

	results := c.UploadImages(sec.ID, []UploadFile{
		{Name: "First Photo.png", Data: pngData},
		{Name: "second.png", Data: pngData},
		{Name: "third.png", Data: pngData},
	}, 5, "cap", "alt")

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("files 1 and 3 should succeed, got %v / %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil {
		t.Error("file 2 should fail on the injected storage error")
	}
	if !strings.Contains(results[0].URL, sec.ID+"/") {
		t.Errorf("URL %q should contain the section folder", results[0].URL)
	}
	if !strings.Contains(results[0].URL, "first-photo.jpg") {
		t.Errorf("URL %q should end in the slugified jpeg name", results[0].URL)
	}

	// Only the two successful files have rows.
	got, err := s.GetSectionBySlug("gallery")
	if err != nil {
		t.Fatalf("GetSectionBySlug failed: %v", err)
	}
	if len(got.Images) != 2 {
		t.Fatalf("image rows = %d, want 2", len(got.Images))
	}
	if got.Images[0].Order != 5 || got.Images[1].Order != 7 {
		t.Errorf("orders = [%d %d], want [5 7] (base plus batch index)", got.Images[0].Order, got.Images[1].Order)
	}
	if got.Images[0].Caption != "cap" || got.Images[0].AltText != "alt" {
		t.Errorf("caption/alt = %q/%q, want cap/alt", got.Images[0].Caption, got.Images[0].AltText)
	}
}

func TestUploadImagesRejectsNonImage(t *testing.T) {
	s := setupTestStore(t)
	objects := newFakeObjectStore()
	c := NewCatalog(s, objects)

	sec, err := c.CreateSection("Gallery", "gallery", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}

	results := c.UploadImages(sec.ID, []UploadFile{{Name: "notes.txt", Data: []byte("not an image")}}, 0, "", "")
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected a decode failure, got %+v", results)
	}
	if len(objects.uploads) != 0 {
		t.Error("nothing should reach storage when decoding fails")
	}
}

func TestDeleteImage(t *testing.T) {
	s := setupTestStore(t)
	objects := newFakeObjectStore()
	c := NewCatalog(s, objects)

	sec, err := c.CreateSection("Gallery", "gallery", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}
	url := objects.PublicURL("gallery/a.jpg")
	img, err := s.InsertImage(sec.ID, url, "", "", 0)
	if err != nil {
		t.Fatalf("InsertImage failed: %v", err)
	}

	if err := c.DeleteImage(img.ID, url); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	if len(objects.removed) != 1 || objects.removed[0] != "gallery/a.jpg" {
		t.Errorf("removed = %v, want [gallery/a.jpg]", objects.removed)
	}
	if err := s.DeleteImageRow(img.ID); err != ErrNotFound {
		t.Error("image row should already be deleted")
	}
}

func TestDeleteImageUnresolvableURL(t *testing.T) {
	s := setupTestStore(t)
	objects := newFakeObjectStore()
	c := NewCatalog(s, objects)

	err := c.DeleteImage("some-id", "https://cdn.example.com/images/a.jpg")
	if err != ErrUnresolvablePath {
		t.Fatalf("DeleteImage = %v, want ErrUnresolvablePath", err)
	}
	if len(objects.removed) != 0 {
		t.Error("storage must not be touched when the path cannot be resolved")
	}
}

func TestDeleteImageStorageFailureKeepsRow(t *testing.T) {
	s := setupTestStore(t)
	objects := newFakeObjectStore()
	c := NewCatalog(s, objects)

	sec, err := c.CreateSection("Gallery", "gallery", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}
	url := objects.PublicURL("gallery/a.jpg")
	img, err := s.InsertImage(sec.ID, url, "", "", 0)
	if err != nil {
		t.Fatalf("InsertImage failed: %v", err)
	}

	objects.removeErr = errors.New("backend unavailable")
	if err := c.DeleteImage(img.ID, url); err == nil {
		t.Fatal("expected DeleteImage to surface the storage error")
	}
	// The row survives the failed removal.
	if err := s.DeleteImageRow(img.ID); err != nil {
		t.Errorf("image row should still exist, got %v", err)
	}
}

func TestCreateSkillValidation(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())

	if _, err := c.CreateSkill("", SkillCore, 1); err != ErrInvalidSkill {
		t.Errorf("empty name = %v, want ErrInvalidSkill", err)
	}
	if _, err := c.CreateSkill("   ", SkillCore, 1); err != ErrInvalidSkill {
		t.Errorf("blank name = %v, want ErrInvalidSkill", err)
	}
	if _, err := c.CreateSkill("Figma", "hobby", 1); err != ErrInvalidSkill {
		t.Errorf("bad category = %v, want ErrInvalidSkill", err)
	}

	sk, err := c.CreateSkill("  Figma  ", SkillTool, 1)
	if err != nil {
		t.Fatalf("CreateSkill failed: %v", err)
	}
	if sk.Name != "Figma" {
		t.Errorf("name = %q, want trimmed Figma", sk.Name)
	}
}

func TestCreateSectionRequiresSlug(t *testing.T) {
	s := setupTestStore(t)
	c := NewCatalog(s, newFakeObjectStore())

	if _, err := c.CreateSection("   ", "", "", 1, true); err == nil {
		t.Fatal("expected a section with no derivable slug to be rejected")
	}
	sec, err := c.CreateSection("Print & Pattern", "", "", 1, true)
	if err != nil {
		t.Fatalf("CreateSection failed: %v", err)
	}
	if sec.Slug != "print-pattern" {
		t.Errorf("slug = %q, want print-pattern", sec.Slug)
	}
}
