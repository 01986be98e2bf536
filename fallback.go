package portfolio

// FallbackPayload returns the static, hand-authored portfolio used whenever
// the backend is unconfigured or a read fails. It carries 7 published
// sections and 14 skills, no images, and is always returned whole — never
// merged with partial live data. A fresh value is built per call so callers
// cannot mutate shared state.
func FallbackPayload() Payload {
	return Payload{
		Live: false,
		Sections: []Section{
			{
				ID:          "intro",
				Title:       "Introduction",
				Slug:        "introduction",
				Description: "Soumya Vatsa is a fashion communication designer blending strategic storytelling with tactile experimentation across media.",
				Order:       1,
				Published:   true,
				Content: []ContentBlock{
					{ID: "intro-1", Heading: "Creative POV", BodyText: "A detail-obsessed explorer of visuals, culture, and craft — translating layered research into immersive narratives for fashion, lifestyle, and emerging experiences.", Order: 1},
					{ID: "intro-2", Heading: "Toolbox", BodyText: "Adobe Creative Suite · Figma · Blender · Midjourney · Flair · Rapid trend decoding & visual strategy.", Order: 2},
				},
				Images: []ImageAsset{},
			},
			{
				ID:          "graphic-design",
				Title:       "Graphic Design",
				Slug:        "graphic-design",
				Description: "Print systems, wearable graphics, and bespoke branding built for bold visual impact.",
				Order:       2,
				Published:   true,
				Content: []ContentBlock{
					{ID: "gd-1", Heading: "Brand Universes", BodyText: "Crafted cohesive brand kits with motif libraries, typography stacks, and motion-ready assets.", Order: 1},
					{ID: "gd-2", Heading: "Experimental Surfaces", BodyText: "Midjourney + Illustrator workflows used to prototype merch-ready graphics at speed.", Order: 2},
				},
				Images: []ImageAsset{},
			},
			{
				ID:          "photography",
				Title:       "Photography",
				Slug:        "photography",
				Description: "Fashion styling and lens work focused on mood, composition, and narrative sequencing.",
				Order:       3,
				Published:   true,
				Content: []ContentBlock{
					{ID: "photo-1", Heading: "Styling + Light", BodyText: "Shot editorial studies that lean into contrast lighting, layered textures, and cinematic palettes.", Order: 1},
				},
				Images: []ImageAsset{},
			},
			{
				ID:          "trend-analysis",
				Title:       "Trend Analysis",
				Slug:        "trend-analysis",
				Description: "Research-backed insights mapping cultural shifts to actionable visual directions.",
				Order:       4,
				Published:   true,
				Content: []ContentBlock{
					{ID: "trend-1", Heading: "QR Trend Tees", BodyText: "Interactive tees where kids scan QR codes to unlock stories on sustainability — a playful bridge between tech and tactile learning.", Order: 1},
				},
				Images: []ImageAsset{},
			},
			{
				ID:          "visual-merchandising",
				Title:       "Visual Merchandising",
				Slug:        "visual-merchandising",
				Description: "Immersive space narratives balancing product stories with sensorial cues.",
				Order:       5,
				Published:   true,
				Content: []ContentBlock{
					{ID: "vm-1", Heading: "Spatial Storytelling", BodyText: "Composed storefront mockups focusing on movement, color flow, and hero storytelling moments.", Order: 1},
				},
				Images: []ImageAsset{},
			},
			{
				ID:          "branding",
				Title:       "Branding",
				Slug:        "branding",
				Description: "Identity systems like Vatsya where typography, symbol, and lore align.",
				Order:       6,
				Published:   true,
				Content: []ContentBlock{
					{ID: "branding-1", Heading: "Narrative-Driven Logos", BodyText: "Developed wordmarks that adapt across print, motion, and interactive prototypes.", Order: 1},
				},
				Images: []ImageAsset{},
			},
			{
				ID:          "print-pattern",
				Title:       "Print & Pattern Design",
				Slug:        "print-pattern",
				Description: "Digitally sculpted florals inspired by traditional motifs, deployed across textiles and décor.",
				Order:       7,
				Published:   true,
				Content: []ContentBlock{
					{ID: "print-1", Heading: "Living Color", BodyText: "High-saturation compositions designed to wrap garments, walls, and objects seamlessly.", Order: 1},
				},
				Images: []ImageAsset{},
			},
		},
		Skills: []Skill{
			{ID: "skill-1", Name: "Visual Storytelling", Category: SkillCore, Order: 1},
			{ID: "skill-2", Name: "Trend Research", Category: SkillCore, Order: 2},
			{ID: "skill-3", Name: "Fashion Styling", Category: SkillCore, Order: 3},
			{ID: "skill-4", Name: "Brand Identity", Category: SkillCore, Order: 4},
			{ID: "skill-5", Name: "Editorial Design", Category: SkillCore, Order: 5},
			{ID: "skill-6", Name: "Visual Merchandising", Category: SkillCore, Order: 6},
			{ID: "skill-7", Name: "Art Direction", Category: SkillCore, Order: 7},
			{ID: "skill-8", Name: "Adobe Photoshop", Category: SkillTool, Order: 1},
			{ID: "skill-9", Name: "Adobe Illustrator", Category: SkillTool, Order: 2},
			{ID: "skill-10", Name: "Figma", Category: SkillTool, Order: 3},
			{ID: "skill-11", Name: "Blender", Category: SkillTool, Order: 4},
			{ID: "skill-12", Name: "Midjourney", Category: SkillTool, Order: 5},
			{ID: "skill-13", Name: "Procreate", Category: SkillTool, Order: 6},
			{ID: "skill-14", Name: "After Effects", Category: SkillTool, Order: 7},
		},
	}
}
