package portfolio

import "testing"

func TestFallbackPayloadShape(t *testing.T) {
	p := FallbackPayload()

	if p.Live {
		t.Error("fallback payload must not be marked live")
	}
	if len(p.Sections) != 7 {
		t.Fatalf("sections = %d, want 7", len(p.Sections))
	}
	if len(p.Skills) != 14 {
		t.Fatalf("skills = %d, want 14", len(p.Skills))
	}

	if p.Sections[0].Slug != "introduction" {
		t.Errorf("first section slug = %q, want introduction", p.Sections[0].Slug)
	}
	for _, sec := range p.Sections {
		if !sec.Published {
			t.Errorf("fallback section %s should be published", sec.Slug)
		}
		if sec.Content == nil || sec.Images == nil {
			t.Errorf("fallback section %s has nil collections", sec.Slug)
		}
		if len(sec.Images) != 0 {
			t.Errorf("fallback section %s should carry no images", sec.Slug)
		}
	}

	var core, tools int
	for _, sk := range p.Skills {
		switch sk.Category {
		case SkillCore:
			core++
		case SkillTool:
			tools++
		default:
			t.Errorf("skill %s has unknown category %q", sk.Name, sk.Category)
		}
	}
	if core != 7 || tools != 7 {
		t.Errorf("skill split = %d core / %d tool, want 7/7", core, tools)
	}
}

func TestFallbackPayloadIsFreshPerCall(t *testing.T) {
	first := FallbackPayload()
	first.Sections[0].Title = "mutated"
	first.Skills[0].Name = "mutated"

	second := FallbackPayload()
	if second.Sections[0].Title == "mutated" {
		t.Error("mutating one fallback payload must not leak into the next")
	}
	if second.Skills[0].Name == "mutated" {
		t.Error("mutating fallback skills must not leak into the next payload")
	}
}
