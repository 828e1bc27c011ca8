package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// rgb is a parsed hex color.
type rgb struct {
	r, g, b int
}

// parseHex parses a #rgb or #rrggbb color string.
func parseHex(hex string) (rgb, bool) {
	hex = strings.TrimPrefix(hex, "#")

	// ParseUint rejects the whole component on any non-hex rune.
	parse := func(s string) (int, bool) {
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, false
		}
		return int(v), true
	}

	switch len(hex) {
	case 3:
		r, ok1 := parse(hex[0:1] + hex[0:1])
		g, ok2 := parse(hex[1:2] + hex[1:2])
		b, ok3 := parse(hex[2:3] + hex[2:3])
		if !ok1 || !ok2 || !ok3 {
			return rgb{}, false
		}
		return rgb{r, g, b}, true
	case 6:
		r, ok1 := parse(hex[0:2])
		g, ok2 := parse(hex[2:4])
		b, ok3 := parse(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return rgb{}, false
		}
		return rgb{r, g, b}, true
	default:
		return rgb{}, false
	}
}

// HexToHSL converts a hex color to the space-separated HSL triple used as a
// CSS custom property value ("217 91% 60%"). ok is false for invalid input.
func HexToHSL(hex string) (string, bool) {
	c, ok := parseHex(hex)
	if !ok {
		return "", false
	}

	r := float64(c.r) / 255
	g := float64(c.g) / 255
	b := float64(c.b) / 255

	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	var h, s float64
	l := (max + min) / 2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("%.0f %.0f%% %.0f%%", h*360, s*100, l*100), true
}

// IsColorDark reports whether a contrasting light foreground is needed.
func IsColorDark(hex string) bool {
	c, ok := parseHex(hex)
	if !ok {
		return false
	}
	luminance := 0.299*float64(c.r) + 0.587*float64(c.g) + 0.114*float64(c.b)
	return luminance < 128
}

// Classes returns the style classes the current settings toggle on the page
// body: theme palette, font family, and base text size.
func (s Settings) Classes() []string {
	return []string{
		"theme-" + string(s.Theme),
		"font-" + string(s.FontFamily),
		"text-" + string(s.FontSize),
	}
}

// contrastForeground returns the HSL foreground for a background color.
func contrastForeground(hex string) string {
	if IsColorDark(hex) {
		return "0 0% 100%"
	}
	return "0 0% 0%"
}

// CSSVariables renders the :root custom property block for the settings.
// Predefined themes carry their palette in their theme-* class, so only the
// custom theme emits color variables; spacing scales are always emitted.
// Applying the result is idempotent.
func (s Settings) CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --margin: %srem;\n", spacingRem(s.Margin))
	fmt.Fprintf(&b, "  --padding: %srem;\n", spacingRem(s.Padding))

	if s.Theme == ThemeCustom {
		if primary, ok := HexToHSL(s.PrimaryColor); ok {
			fmt.Fprintf(&b, "  --primary: %s;\n", primary)
			fmt.Fprintf(&b, "  --primary-foreground: %s;\n", contrastForeground(s.PrimaryColor))
		}
		if secondary, ok := HexToHSL(s.SecondaryColor); ok {
			fmt.Fprintf(&b, "  --secondary: %s;\n", secondary)
			fmt.Fprintf(&b, "  --secondary-foreground: %s;\n", contrastForeground(s.SecondaryColor))
			fmt.Fprintf(&b, "  --accent: %s;\n", secondary)
			fmt.Fprintf(&b, "  --accent-foreground: %s;\n", contrastForeground(s.SecondaryColor))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// spacingRem converts a spacing scale step to rem units (4 scale = 1rem).
func spacingRem(s Spacing) string {
	switch s {
	case Spacing2:
		return "0.5"
	case Spacing6:
		return "1.5"
	case Spacing8:
		return "2"
	default:
		return "1"
	}
}
