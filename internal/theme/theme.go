// Package theme defines the colors used for rendering and their optional
// per-repo override file.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AddColor     string `json:"addColor"`
	DelColor     string `json:"delColor"`
	MetaColor    string `json:"metaColor"`
	DividerColor string `json:"dividerColor"`
	AddBgColor   string `json:"addBgColor"` // intraline emphasis background
	DelBgColor   string `json:"delBgColor"`
}

// Dark is the default theme.
func Dark() Theme {
	return Theme{
		AddColor:     "34",
		DelColor:     "196",
		MetaColor:    "63",
		DividerColor: "240",
		AddBgColor:   "22",
		DelBgColor:   "52",
	}
}

// Light suits light terminal backgrounds.
func Light() Theme {
	return Theme{
		AddColor:     "22",
		DelColor:     "9",
		MetaColor:    "27",
		DividerColor: "244",
		AddBgColor:   "194",
		DelBgColor:   "224",
	}
}

// ForName returns the named base theme, defaulting to dark.
func ForName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// LoadFromRepo merges .stager/theme.json at repoRoot over the base theme.
func LoadFromRepo(repoRoot, base string) Theme {
	t := ForName(base)
	b, err := os.ReadFile(filepath.Join(repoRoot, ".stager", "theme.json"))
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	if u.AddColor != "" {
		t.AddColor = u.AddColor
	}
	if u.DelColor != "" {
		t.DelColor = u.DelColor
	}
	if u.MetaColor != "" {
		t.MetaColor = u.MetaColor
	}
	if u.DividerColor != "" {
		t.DividerColor = u.DividerColor
	}
	if u.AddBgColor != "" {
		t.AddBgColor = u.AddBgColor
	}
	if u.DelBgColor != "" {
		t.DelBgColor = u.DelBgColor
	}
	return t
}

// AddText styles added text.
func (t Theme) AddText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AddColor)).Render(s)
}

// DelText styles deleted text.
func (t Theme) DelText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DelColor)).Render(s)
}

// MetaText styles hunk headers and metadata.
func (t Theme) MetaText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.MetaColor)).Render(s)
}

// DividerText styles frame rules and separators.
func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

// AddEmph styles the changed portion of an added/replaced line.
func (t Theme) AddEmph(s string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.AddColor)).
		Background(lipgloss.Color(t.AddBgColor)).
		Render(s)
}

// DelEmph styles the changed portion of a deleted/replaced line.
func (t Theme) DelEmph(s string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.DelColor)).
		Background(lipgloss.Color(t.DelBgColor)).
		Render(s)
}
