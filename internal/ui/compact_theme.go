package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is a dense theme suited to long lists of crontab lines
type CompactTheme struct {
	base fyne.Theme
}

// NewCompactTheme creates a new compact theme on top of the default one
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 121, B: 107, A: 255} // teal, used by Accept
	case theme.ColorNameError:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 239, G: 108, B: 0, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 56, G: 142, B: 60, A: 255}
	case theme.ColorNameSelection:
		if dark {
			return color.RGBA{R: 0, G: 77, B: 64, A: 255}
		}
		return color.RGBA{R: 178, G: 223, B: 219, A: 255}
	case theme.ColorNameBackground:
		if dark {
			return color.RGBA{R: 24, G: 26, B: 27, A: 255}
		}
		return color.RGBA{R: 247, G: 248, B: 248, A: 255}
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 236, G: 239, B: 241, A: 255}
		}
		return color.RGBA{R: 38, G: 50, B: 56, A: 255}
	}

	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes; list rows and inputs are tighter than the default
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameInputRadius:
		return 2
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return t.base.Size(name)
}
