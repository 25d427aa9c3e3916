package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemePalette is the full set of named colours the window paints with.
type ThemePalette struct {
	Name             string
	Background       color.Color
	Foreground       color.Color
	TextBackground   color.Color
	TextForeground   color.Color
	StatusBackground color.Color
	Muted            color.Color
	Button           ButtonPalette
}

// ButtonPalette is the subset a roundedButton needs.
type ButtonPalette struct {
	Foreground color.Color
	Normal     color.Color
	Hover      color.Color
	Pressed    color.Color
	Disabled   color.Color
}

func hex(rgb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

func lightPalette() ThemePalette {
	return ThemePalette{
		Name:             "light",
		Background:       hex(0xf0f0f0),
		Foreground:       hex(0x000000),
		TextBackground:   hex(0xffffff),
		TextForeground:   hex(0x000000),
		StatusBackground: hex(0xe0e0e0),
		Muted:            hex(0x888888),
		Button: ButtonPalette{
			Foreground: hex(0xffffff),
			Normal:     hex(0x4caf50),
			Hover:      hex(0x5cb85c),
			Pressed:    hex(0x3e8e41),
			Disabled:   hex(0xd0d0d0),
		},
	}
}

func darkPalette() ThemePalette {
	return ThemePalette{
		Name:             "dark",
		Background:       hex(0x2e2e2e),
		Foreground:       hex(0xd0d0d0),
		TextBackground:   hex(0x3c3c3c),
		TextForeground:   hex(0xd0d0d0),
		StatusBackground: hex(0x3c3c3c),
		Muted:            hex(0x9e9e9e),
		Button: ButtonPalette{
			Foreground: hex(0xffffff),
			Normal:     hex(0x4f4f4f),
			Hover:      hex(0x6a6a6a),
			Pressed:    hex(0x2c2c2c),
			Disabled:   hex(0x202020),
		},
	}
}

func paletteFor(dark bool) ThemePalette {
	if dark {
		return darkPalette()
	}
	return lightPalette()
}

// paletteTheme lets stock Fyne widgets (entry, check, dialogs) follow the
// active palette. Anything not mapped falls through to the default theme.
type paletteTheme struct {
	palette ThemePalette
	dark    bool
}

var _ fyne.Theme = paletteTheme{}

func newPaletteTheme(dark bool) paletteTheme {
	return paletteTheme{palette: paletteFor(dark), dark: dark}
}

func (t paletteTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t paletteTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.palette
	switch n {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return p.Background
	case theme.ColorNameForeground:
		return p.Foreground
	case theme.ColorNameInputBackground:
		return p.TextBackground
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return p.Muted
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return p.Button.Normal
	case theme.ColorNameSelection:
		return withAlpha(p.Button.Normal, 0x66)
	}
	return theme.DefaultTheme().Color(n, t.variant())
}

func (t paletteTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t paletteTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t paletteTheme) Size(n fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(n)
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
