package views

import (
	"net/url"

	"github.com/svatsa/portfolio"
)

// SkillsByCategory splits skills into core competencies and tools,
// preserving the incoming order within each group.
func SkillsByCategory(skills []portfolio.Skill) (core, tools []portfolio.Skill) {
	for _, s := range skills {
		switch s.Category {
		case portfolio.SkillTool:
			tools = append(tools, s)
		default:
			core = append(core, s)
		}
	}
	return core, tools
}

// PathEscape wraps url.PathEscape for use in markup expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}
