// Package theme holds the visual preference settings: a small record
// persisted independently from the portfolio content under its own snapshot
// key, following the same write-through pattern.
package theme

// Name is a predefined theme palette, or "custom" for user-picked colors.
type Name string

const (
	ThemeNetflix    Name = "netflix"
	ThemeYouTube    Name = "youtube"
	ThemeSpotify    Name = "spotify"
	ThemeSnapchat   Name = "snapchat"
	ThemeSteam      Name = "steam"
	ThemeUber       Name = "uber"
	ThemeTikTok     Name = "tiktok"
	ThemeBeach      Name = "beach"
	ThemeMountain   Name = "mountain"
	ThemeRainforest Name = "rainforest"
	ThemeCustom     Name = "custom"
)

// validThemes is the set of recognized theme names.
var validThemes = map[Name]bool{
	ThemeNetflix:    true,
	ThemeYouTube:    true,
	ThemeSpotify:    true,
	ThemeSnapchat:   true,
	ThemeSteam:      true,
	ThemeUber:       true,
	ThemeTikTok:     true,
	ThemeBeach:      true,
	ThemeMountain:   true,
	ThemeRainforest: true,
	ThemeCustom:     true,
}

// FontFamily selects the site font.
type FontFamily string

const (
	FontInter    FontFamily = "inter"
	FontRoboto   FontFamily = "roboto"
	FontPoppins  FontFamily = "poppins"
	FontOpenSans FontFamily = "openSans"
	FontLato     FontFamily = "lato"
)

var validFonts = map[FontFamily]bool{
	FontInter:    true,
	FontRoboto:   true,
	FontPoppins:  true,
	FontOpenSans: true,
	FontLato:     true,
}

// FontSize is the base text size scale.
type FontSize string

const (
	SizeSm   FontSize = "sm"
	SizeBase FontSize = "base"
	SizeLg   FontSize = "lg"
	SizeXl   FontSize = "xl"
)

var validSizes = map[FontSize]bool{
	SizeSm:   true,
	SizeBase: true,
	SizeLg:   true,
	SizeXl:   true,
}

// Spacing is a margin or padding scale step.
type Spacing string

const (
	Spacing2 Spacing = "2"
	Spacing4 Spacing = "4"
	Spacing6 Spacing = "6"
	Spacing8 Spacing = "8"
)

var validSpacing = map[Spacing]bool{
	Spacing2: true,
	Spacing4: true,
	Spacing6: true,
	Spacing8: true,
}

// Settings is the persisted visual preference record.
type Settings struct {
	Theme          Name       `json:"theme"`
	FontFamily     FontFamily `json:"fontFamily"`
	FontSize       FontSize   `json:"fontSize"`
	Margin         Spacing    `json:"margin"`
	Padding        Spacing    `json:"padding"`
	PrimaryColor   string     `json:"primaryColor"`
	SecondaryColor string     `json:"secondaryColor"`
	DarkMode       bool       `json:"darkMode"`
}

// DefaultSettings returns the built-in visual preferences.
func DefaultSettings() Settings {
	return Settings{
		Theme:          ThemeCustom,
		FontFamily:     FontInter,
		FontSize:       SizeBase,
		Margin:         Spacing4,
		Padding:        Spacing4,
		PrimaryColor:   "#3b82f6", // blue-500
		SecondaryColor: "#10b981", // emerald-500
	}
}

// Normalize resets any unrecognized field to its default so a stale or
// hand-edited snapshot cannot leave the styling layer without a value.
func (s *Settings) Normalize() {
	defaults := DefaultSettings()
	if !validThemes[s.Theme] {
		s.Theme = defaults.Theme
	}
	if !validFonts[s.FontFamily] {
		s.FontFamily = defaults.FontFamily
	}
	if !validSizes[s.FontSize] {
		s.FontSize = defaults.FontSize
	}
	if !validSpacing[s.Margin] {
		s.Margin = defaults.Margin
	}
	if !validSpacing[s.Padding] {
		s.Padding = defaults.Padding
	}
	if _, ok := parseHex(s.PrimaryColor); !ok {
		s.PrimaryColor = defaults.PrimaryColor
	}
	if _, ok := parseHex(s.SecondaryColor); !ok {
		s.SecondaryColor = defaults.SecondaryColor
	}
}
