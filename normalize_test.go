package portfolio

import "testing"

func TestNormalizeSectionSortsByOrder(t *testing.T) {
	sec := Section{
		Content: []ContentBlock{
			{ID: "c", Order: 3},
			{ID: "a", Order: 1},
			{ID: "b", Order: 2},
		},
		Images: []ImageAsset{
			{ID: "y", Order: 2},
			{ID: "x", Order: 1},
		},
	}

	got := NormalizeSection(sec)

	if got.Content[0].ID != "a" || got.Content[1].ID != "b" || got.Content[2].ID != "c" {
		t.Errorf("content order = [%s %s %s], want [a b c]", got.Content[0].ID, got.Content[1].ID, got.Content[2].ID)
	}
	if got.Images[0].ID != "x" || got.Images[1].ID != "y" {
		t.Errorf("image order = [%s %s], want [x y]", got.Images[0].ID, got.Images[1].ID)
	}
}

func TestNormalizeSectionNilCollections(t *testing.T) {
	got := NormalizeSection(Section{})
	if got.Content == nil {
		t.Error("nil content should become an empty slice")
	}
	if got.Images == nil {
		t.Error("nil images should become an empty slice")
	}
	if len(got.Content) != 0 || len(got.Images) != 0 {
		t.Errorf("expected empty collections, got %d blocks and %d images", len(got.Content), len(got.Images))
	}
}

func TestNormalizeSectionStableOnTies(t *testing.T) {
	sec := Section{
		Content: []ContentBlock{
			{ID: "first", Order: 5},
			{ID: "second", Order: 5},
			{ID: "third", Order: 5},
		},
	}
	got := NormalizeSection(sec)
	if got.Content[0].ID != "first" || got.Content[1].ID != "second" || got.Content[2].ID != "third" {
		t.Errorf("tied orders must keep incoming position, got [%s %s %s]",
			got.Content[0].ID, got.Content[1].ID, got.Content[2].ID)
	}
}

func TestNormalizeSectionDoesNotMutateInput(t *testing.T) {
	sec := Section{
		Content: []ContentBlock{
			{ID: "b", Order: 2},
			{ID: "a", Order: 1},
		},
	}
	_ = NormalizeSection(sec)
	if sec.Content[0].ID != "b" {
		t.Error("input slice must not be reordered")
	}
}
