package render

import (
	"fmt"
	"image/color"
)

// Options configures a Renderer. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	Width  int
	Height int
	// MaxWords caps how many entries of the frequency model are drawn.
	MaxWords int

	Background color.Color
	// Colors is sampled uniformly for each word.
	Colors []color.Color

	// MaxFontSize of 0 derives the size from the two most frequent words.
	MaxFontSize int
	MinFontSize int
	FontStep    int
	// RelativeScaling mixes rank (0) and frequency (1) when sizing words.
	RelativeScaling float64
	// PreferHorizontal is the probability that a word is laid out
	// horizontally before the other orientation is tried.
	PreferHorizontal float64
	// Margin is the free space in pixels kept around every word.
	Margin int

	// Seed fixes the placement RNG. 0 picks a time based seed.
	Seed int64
	// FontTTF overrides the embedded Go Regular font.
	FontTTF []byte
	// Trim crops the output to the bounding box of the drawn words.
	Trim bool
}

// DefaultOptions returns the fixed parameters the application renders
// with: a white 1600x800 canvas holding at most 200 words.
func DefaultOptions() Options {
	return Options{
		Width:            1600,
		Height:           800,
		MaxWords:         200,
		Background:       color.White,
		Colors:           Viridis(),
		MinFontSize:      4,
		FontStep:         1,
		RelativeScaling:  0.5,
		PreferHorizontal: 0.9,
		Margin:           2,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.MinFontSize <= 0 {
		return fmt.Errorf("min font size must be positive, got %d", o.MinFontSize)
	}
	if o.MaxFontSize != 0 && o.MaxFontSize < o.MinFontSize {
		return fmt.Errorf("max font size %d is below min font size %d", o.MaxFontSize, o.MinFontSize)
	}
	if o.FontStep <= 0 {
		return fmt.Errorf("font step must be positive, got %d", o.FontStep)
	}
	if o.RelativeScaling < 0 || o.RelativeScaling > 1 {
		return fmt.Errorf("relative scaling must be within [0, 1], got %v", o.RelativeScaling)
	}
	if o.PreferHorizontal < 0 || o.PreferHorizontal > 1 {
		return fmt.Errorf("prefer horizontal must be within [0, 1], got %v", o.PreferHorizontal)
	}
	if o.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", o.Margin)
	}
	return nil
}

// viridis anchor points, dark purple to yellow.
var viridisStops = []color.NRGBA{
	{0x44, 0x01, 0x54, 0xff},
	{0x48, 0x28, 0x78, 0xff},
	{0x3e, 0x4a, 0x89, 0xff},
	{0x31, 0x68, 0x8e, 0xff},
	{0x26, 0x82, 0x8e, 0xff},
	{0x1f, 0x9e, 0x89, 0xff},
	{0x35, 0xb7, 0x79, 0xff},
	{0x6d, 0xcd, 0x59, 0xff},
	{0xb4, 0xde, 0x2c, 0xff},
	{0xfd, 0xe7, 0x25, 0xff},
}

// Viridis returns a 32-step sampling of the viridis colour map.
func Viridis() []color.Color {
	const steps = 32
	out := make([]color.Color, steps)
	for i := range out {
		out[i] = viridisAt(float64(i) / float64(steps-1))
	}
	return out
}

func viridisAt(t float64) color.NRGBA {
	if t <= 0 {
		return viridisStops[0]
	}
	if t >= 1 {
		return viridisStops[len(viridisStops)-1]
	}
	pos := t * float64(len(viridisStops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := viridisStops[i], viridisStops[i+1]
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*frac + 0.5) }
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}
