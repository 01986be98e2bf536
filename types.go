package portfolio

// Section is a top-level content unit of the portfolio (e.g. "Photography").
// It owns an ordered list of content blocks and an ordered list of images.
type Section struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	Order       int            `json:"order"`
	Published   bool           `json:"is_published"`
	Content     []ContentBlock `json:"content"`
	Images      []ImageAsset   `json:"images"`
}

// ContentBlock is a heading/body pair belonging to a section.
type ContentBlock struct {
	ID       string `json:"id"`
	Heading  string `json:"heading,omitempty"`
	BodyText string `json:"body_text,omitempty"`
	Order    int    `json:"order"`
}

// ImageAsset is a stored image referenced by its public URL.
type ImageAsset struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"alt_text,omitempty"`
	Order   int    `json:"order"`
}

// Skill categories. Ordering is scoped per category.
const (
	SkillCore = "core"
	SkillTool = "tool"
)

// Skill is a labeled competency or tool, displayed independent of sections.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// Payload is the aggregate root handed to the public page: published
// sections with their nested content, all skills, and whether the data
// came from the live store or the static fallback.
type Payload struct {
	Sections []Section `json:"sections"`
	Skills   []Skill   `json:"skills"`
	Live     bool      `json:"live"`
}

// StorageStats reports bucket usage against the fixed quota.
type StorageStats struct {
	TotalSize          int64   `json:"totalSize"`
	MaxStorage         int64   `json:"maxStorage"`
	UsedPercentage     float64 `json:"usedPercentage"`
	RemainingBytes     int64   `json:"remainingBytes"`
	FileCount          int     `json:"fileCount"`
	FormattedUsed      string  `json:"formattedUsed"`
	FormattedMax       string  `json:"formattedMax"`
	FormattedRemaining string  `json:"formattedRemaining"`
}
