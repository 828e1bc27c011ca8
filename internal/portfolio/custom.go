package portfolio

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionKind selects the initial structure of a new custom section.
type SectionKind string

const (
	KindCustom   SectionKind = "custom"
	KindGallery  SectionKind = "gallery"
	KindTimeline SectionKind = "timeline"
)

var sectionIDSpaces = regexp.MustCompile(`\s+`)

// NormalizeSectionID turns a display name into a section key: lowercased,
// trimmed, spaces replaced with underscores.
func NormalizeSectionID(id string) string {
	return sectionIDSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(id)), "_")
}

// NewCustomSection builds the seed payload for a viewer-added section of the
// given kind. Seed is the initial content or item description; when empty a
// placeholder is used.
func NewCustomSection(title string, kind SectionKind, seed string) (CustomSection, error) {
	section := CustomSection{
		IsRequired: false,
		Title:      title,
		Size:       "text-2xl",
	}

	switch kind {
	case KindCustom:
		text := seed
		if text == "" {
			text = "Add your content here."
		}
		section.Content = []Paragraph{{Paragraph: 1, Text: "<p>" + text + "</p>"}}
	case KindGallery:
		description := seed
		if description == "" {
			description = "Add your description here."
		}
		section.Items = []CustomItem{{
			Title:       "Sample Item",
			Description: description,
			Image:       "/placeholder.svg?height=300&width=500",
		}}
	case KindTimeline:
		description := seed
		if description == "" {
			description = "Add your description here."
		}
		section.Items = []CustomItem{{
			Title:       "Sample Event",
			Date:        "2023",
			Description: description,
		}}
	default:
		return CustomSection{}, fmt.Errorf("unknown section kind %q", kind)
	}

	return section, nil
}
