package portfolio

import "sort"

// NormalizeSection returns a copy of sec whose content and image lists are
// sorted ascending by their order fields. Nil collections become empty
// slices. Cardinality is preserved; the sort is stable so rows sharing an
// order value keep their incoming relative position. Pure transform, no
// side effects on sec.
func NormalizeSection(sec Section) Section {
	content := make([]ContentBlock, len(sec.Content))
	copy(content, sec.Content)
	sort.SliceStable(content, func(i, j int) bool {
		return content[i].Order < content[j].Order
	})

	images := make([]ImageAsset, len(sec.Images))
	copy(images, sec.Images)
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Order < images[j].Order
	})

	sec.Content = content
	sec.Images = images
	return sec
}
