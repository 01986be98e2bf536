package portfolio

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Print & Pattern  ", "print-pattern"},
		{"UPPER case 123", "upper-case-123"},
		{"---", ""},
		{"", ""},
		{"visual merchandising!", "visual-merchandising"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	if got := BuildURL("http://localhost:3000", "sections", "intro"); got != "http://localhost:3000/sections/intro/" {
		t.Errorf("BuildURL = %q", got)
	}
	if got := BuildURL("http://localhost:3000"); got != "http://localhost:3000" {
		t.Errorf("BuildURL with no segments = %q", got)
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Studio", URL: "http://localhost:3000", Description: "Portfolio", Author: "S. Vatsa"}
	got := WebsiteJsonLD(cfg)
	for _, want := range []string{`"@type":"WebSite"`, `"name":"Studio"`, `"S. Vatsa"`} {
		if !strings.Contains(got, want) {
			t.Errorf("WebsiteJsonLD missing %s: %s", want, got)
		}
	}
}

func TestPersonJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Studio", URL: "http://localhost:3000", Author: "S. Vatsa"}
	got := PersonJsonLD(cfg)
	if !strings.Contains(got, `"@type":"Person"`) || !strings.Contains(got, `"S. Vatsa"`) {
		t.Errorf("PersonJsonLD = %s", got)
	}
}
