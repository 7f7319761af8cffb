package types

import (
	"slices"
	"strings"
	"time"
)

const (
	DefaultNoteTitle = "Untitled"
	DefaultColor     = "#FFF176"

	DefaultX      = 50
	DefaultY      = 50
	DefaultWidth  = 220
	DefaultHeight = 220
	MinNoteSize   = 160
)

type Note struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	BoardID    uint   `gorm:"index;not null"`
	Title      string `gorm:"size:255;not null"`
	Content    string
	X          int    `gorm:"not null"`
	Y          int    `gorm:"not null"`
	Width      int    `gorm:"not null"`
	Height     int    `gorm:"not null"`
	Color      string `gorm:"size:7;not null"`
	Tag        string `gorm:"size:255"`
	CreatedAt  time.Time
	LastEdited time.Time
}

// Tags splits a free-text tag string into its elements.
func (n Note) Tags() []string {
	if n.Tag == "" {
		return nil
	}
	return strings.Split(n.Tag, ",")
}

type Choice struct {
	Value string
	Label string
}

var Colors = []Choice{
	{"#C7A4FF", "Soft Purple"},
	{"#FFF176", "Electric Yellow"},
	{"#FF8A80", "Soft Coral"},
	{"#A5D6A7", "Mint"},
	{"#80CBC4", "Teal"},
}

var TagChoices = []Choice{
	{"", "No tag"},
	{"work", "Work"},
	{"idea", "Idea"},
	{"focus", "Focus"},
	{"personal", "Personal"},
	{"todo", "To Do"},
}

// NormalizeColor returns color if it is in the palette, fallback otherwise.
// Hex digits are compared case-insensitively.
func NormalizeColor(color string, fallback string) string {
	color = strings.ToUpper(strings.TrimSpace(color))
	if slices.ContainsFunc(Colors, func(c Choice) bool { return c.Value == color }) {
		return color
	}
	return fallback
}

// NormalizeTag maps a submitted tag onto the stored representation. With
// freeText set the value is treated as a comma separated list, otherwise it
// must be one of TagChoices ("none" and unknown values become empty).
func NormalizeTag(tag string, freeText bool) string {
	tag = strings.TrimSpace(tag)
	if freeText {
		parts := []string{}
		for _, p := range strings.Split(tag, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		return strings.Join(parts, ",")
	}

	tag = strings.ToLower(tag)
	if tag == "none" {
		return ""
	}
	if slices.ContainsFunc(TagChoices, func(c Choice) bool { return c.Value == tag }) {
		return tag
	}
	return ""
}

// TagLabel returns the display label of an enumerated tag.
func TagLabel(tag string) string {
	for _, c := range TagChoices {
		if c.Value == tag {
			return c.Label
		}
	}
	return tag
}
