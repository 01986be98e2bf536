package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned by write operations when no backend is
// configured. Reads never return it; they degrade to the fallback payload.
var ErrNotConfigured = errors.New("portfolio: backend not configured")

// ErrUnresolvablePath is returned when an image URL does not contain the
// public bucket marker, so no storage path can be derived from it.
var ErrUnresolvablePath = errors.New("portfolio: cannot resolve storage path from url")

// ErrInvalidSkill is returned when a skill is created without a name or
// with an unknown category.
var ErrInvalidSkill = errors.New("portfolio: skill name and category are required")

// ContentBlockInput is one submitted heading/body pair. Block order is
// assigned by position in the submitted slice, not carried in the input.
type ContentBlockInput struct {
	Heading  string `json:"heading"`
	BodyText string `json:"body_text"`
}

// UploadFile is one file in a batch image upload.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadResult reports the independent outcome for a single uploaded file.
type UploadResult struct {
	Name string
	URL  string
	Err  error
}

// Catalog is the data access façade: it issues reads and writes against the
// store and object storage, applies normalization, and substitutes the
// static fallback when the backend is absent or a read fails.
//
// A nil store means the backend is unconfigured: reads serve fallback data,
// writes fail with ErrNotConfigured.
type Catalog struct {
	store   *Store
	objects ObjectStore
}

// NewCatalog wires a façade over the given store and object store.
func NewCatalog(store *Store, objects ObjectStore) *Catalog {
	return &Catalog{store: store, objects: objects}
}

// Configured reports whether a live backend is available.
func (c *Catalog) Configured() bool {
	return c.store != nil
}

// PublishedPayload returns the published sections and all skills from the
// live store. On missing configuration or any read error it returns the
// fallback payload verbatim; the error is logged for operators and never
// surfaced to the visitor.
func (c *Catalog) PublishedPayload() Payload {
	if c.store == nil {
		return FallbackPayload()
	}
	sections, err := c.store.ListPublishedSections()
	if err != nil {
		log.Printf("portfolio: loading sections failed, serving fallback: %v", err)
		return FallbackPayload()
	}
	skills, err := c.store.ListSkills()
	if err != nil {
		log.Printf("portfolio: loading skills failed, serving fallback: %v", err)
		return FallbackPayload()
	}
	return Payload{Sections: sections, Skills: skills, Live: true}
}

// AllSections returns every section regardless of publish state, for the
// admin view. It never falls back to static data: on error the admin sees
// an empty list rather than fiction.
func (c *Catalog) AllSections() []Section {
	if c.store == nil {
		return []Section{}
	}
	sections, err := c.store.ListAllSections()
	if err != nil {
		log.Printf("portfolio: loading all sections failed: %v", err)
		return []Section{}
	}
	return sections
}

// CreateSection inserts a new section, deriving the slug from the title
// when none is given.
func (c *Catalog) CreateSection(title, slug, description string, order int, published bool) (Section, error) {
	if c.store == nil {
		return Section{}, ErrNotConfigured
	}
	title = strings.TrimSpace(title)
	if slug = strings.TrimSpace(slug); slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return Section{}, errors.New("portfolio: section slug is required")
	}
	return c.store.CreateSection(title, slug, description, order, published)
}

// UpdateSectionContent updates the section's title and description, deletes
// all of its content blocks, then inserts the submitted blocks with order
// assigned by position. The three steps run sequentially and are not
// atomic: a failure after the delete but before the insert leaves the
// section with zero blocks. Completed steps are never rolled back; the
// first failing step's error is returned.
func (c *Catalog) UpdateSectionContent(sectionID, title, description string, blocks []ContentBlockInput) error {
	if c.store == nil {
		return ErrNotConfigured
	}
	if err := c.store.UpdateSectionMeta(sectionID, title, description); err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	if err := c.store.DeleteSectionContent(sectionID); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if len(blocks) == 0 {
		return nil
	}
	if err := c.store.InsertContentBlocks(sectionID, blocks); err != nil {
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}

// Skills lists all skills ordered ascending. Unlike PublishedPayload this
// surfaces errors: it backs the skills API endpoint.
func (c *Catalog) Skills() ([]Skill, error) {
	if c.store == nil {
		return nil, ErrNotConfigured
	}
	return c.store.ListSkills()
}

// CreateSkill validates the required fields before any write.
func (c *Catalog) CreateSkill(name, category string, order int) (Skill, error) {
	if c.store == nil {
		return Skill{}, ErrNotConfigured
	}
	name = strings.TrimSpace(name)
	if name == "" || (category != SkillCore && category != SkillTool) {
		return Skill{}, ErrInvalidSkill
	}
	return c.store.CreateSkill(name, category, order)
}

// UpdateSkill updates a single skill row; ErrNotFound when the id matches
// nothing.
func (c *Catalog) UpdateSkill(sk Skill) (Skill, error) {
	if c.store == nil {
		return Skill{}, ErrNotConfigured
	}
	return c.store.UpdateSkill(sk)
}

// DeleteSkill removes a single skill row; ErrNotFound when the id matches
// nothing.
func (c *Catalog) DeleteSkill(id string) error {
	if c.store == nil {
		return ErrNotConfigured
	}
	return c.store.DeleteSkill(id)
}

// UploadImages stores each file under a per-section path and records a row
// referencing its public URL. Files are processed one at a time, never
// concurrently, and each outcome is independent: a storage failure skips
// only that file's row insert, and a row failure does not remove the
// stored object. Image orders are baseOrder plus the file's batch index.
func (c *Catalog) UploadImages(sectionID string, files []UploadFile, baseOrder int, caption, altText string) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for i, f := range files {
		res := UploadResult{Name: f.Name}
		res.URL, res.Err = c.uploadOne(sectionID, f, baseOrder+i, caption, altText)
		results = append(results, res)
	}
	return results
}

func (c *Catalog) uploadOne(sectionID string, f UploadFile, order int, caption, altText string) (string, error) {
	if c.store == nil || c.objects == nil {
		return "", ErrNotConfigured
	}
	filename, data, err := processImage(bytes.NewReader(f.Data), f.Name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Name, err)
	}
	objectPath := sectionID + "/" + uuid.NewString() + "-" + filename
	if err := c.objects.Upload(objectPath, data); err != nil {
		return "", fmt.Errorf("%s: upload: %w", f.Name, err)
	}
	publicURL := c.objects.PublicURL(objectPath)
	if _, err := c.store.InsertImage(sectionID, publicURL, caption, altText, order); err != nil {
		return "", fmt.Errorf("%s: record: %w", f.Name, err)
	}
	return publicURL, nil
}

// DeleteImage removes the storage object referenced by url, then deletes
// the image row. When the URL lacks the public bucket marker it fails with
// ErrUnresolvablePath before touching storage or the database. Either
// step's failure halts the remaining step; completed steps are not undone.
func (c *Catalog) DeleteImage(imageID, url string) error {
	if c.store == nil || c.objects == nil {
		return ErrNotConfigured
	}
	path, ok := StoragePathFromURL(url)
	if !ok {
		return ErrUnresolvablePath
	}
	if err := c.objects.Remove(path); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	if err := c.store.DeleteImageRow(imageID); err != nil {
		return fmt.Errorf("delete image row: %w", err)
	}
	return nil
}

// StorageStats aggregates bucket usage against the fixed quota.
func (c *Catalog) StorageStats() (StorageStats, error) {
	if c.objects == nil {
		return StorageStats{}, ErrNotConfigured
	}
	return CollectStorageStats(c.objects)
}

// VerifyAdmin checks login credentials against the stored bcrypt hash.
func (c *Catalog) VerifyAdmin(email, password string) (bool, error) {
	if c.store == nil {
		return false, ErrNotConfigured
	}
	return c.store.VerifyCredentials(email, password)
}
