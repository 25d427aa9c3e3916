// Package render lays out a word-frequency model on a canvas and rasterises
// it. Bigger weights get bigger fonts; each word is dropped at a random free
// spot, shrinking until it fits or falls below the minimum font size.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/oukeidos/wcgen/internal/textfreq"
)

var (
	// ErrNoWords is returned when the frequency model is empty.
	ErrNoWords = errors.New("need at least 1 word to plot a word cloud, got 0")
	// ErrNoSpace is returned when not even the first word fits the canvas.
	ErrNoSpace = errors.New("couldn't find space to draw; the canvas is too small")
)

// Placement is where and how one word was laid out. X and Y are the top-left
// corner of its box on the canvas; the box is TextWidth x TextHeight, or the
// transpose when Vertical.
type Placement struct {
	Word       string
	FontSize   int
	X, Y       int
	TextWidth  int
	TextHeight int
	Vertical   bool
	Color      color.Color
}

// Bounds is the canvas rectangle covered by the word.
func (p Placement) Bounds() image.Rectangle {
	w, h := p.TextWidth, p.TextHeight
	if p.Vertical {
		w, h = h, w
	}
	return image.Rect(p.X, p.Y, p.X+w, p.Y+h)
}

// Renderer turns frequency models into images. It is safe for sequential
// use; concurrent callers should use separate Renderers.
type Renderer struct {
	opts Options
	font *truetype.Font
}

// New validates opts and parses the font.
func New(opts Options) (*Renderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	ttf := opts.FontTTF
	if len(ttf) == 0 {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if len(opts.Colors) == 0 {
		opts.Colors = Viridis()
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	return &Renderer{opts: opts, font: f}, nil
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// Render lays out freqs and draws them.
func (r *Renderer) Render(ctx context.Context, freqs []textfreq.WordFrequency) (image.Image, error) {
	faces := newFaceCache(r.font)
	placements, err := r.layout(ctx, freqs, faces)
	if err != nil {
		return nil, err
	}
	img := r.draw(placements, faces)
	if r.opts.Trim {
		img = crop(img, contentBounds(placements))
	}
	return img, nil
}

// Layout computes placements without drawing.
func (r *Renderer) Layout(ctx context.Context, freqs []textfreq.WordFrequency) ([]Placement, error) {
	return r.layout(ctx, freqs, newFaceCache(r.font))
}

func (r *Renderer) seed() int64 {
	if r.opts.Seed != 0 {
		return r.opts.Seed
	}
	return time.Now().UnixNano()
}

func (r *Renderer) layout(ctx context.Context, freqs []textfreq.WordFrequency, faces *faceCache) ([]Placement, error) {
	freqs = textfreq.Top(nonZero(freqs), r.opts.MaxWords)
	if len(freqs) == 0 {
		return nil, ErrNoWords
	}
	seed := r.seed()

	maxSize := r.opts.MaxFontSize
	if maxSize == 0 {
		trial, err := r.place(ctx, freqs[:min(2, len(freqs))], r.opts.Height, rand.New(rand.NewSource(seed)), faces)
		if err != nil {
			return nil, err
		}
		maxSize = derivedMaxSize(trial)
	}
	return r.place(ctx, freqs, maxSize, rand.New(rand.NewSource(seed)), faces)
}

// derivedMaxSize is the harmonic mean of the two largest trial sizes.
func derivedMaxSize(trial []Placement) int {
	if len(trial) == 1 {
		return trial[0].FontSize
	}
	a, b := float64(trial[0].FontSize), float64(trial[1].FontSize)
	return int(2 * a * b / (a + b))
}

func nonZero(freqs []textfreq.WordFrequency) []textfreq.WordFrequency {
	out := make([]textfreq.WordFrequency, 0, len(freqs))
	for _, f := range freqs {
		if f.Count > 0 {
			out = append(out, f)
		}
	}
	return out
}

func (r *Renderer) place(ctx context.Context, freqs []textfreq.WordFrequency, maxSize int, rng *rand.Rand, faces *faceCache) ([]Placement, error) {
	occ := newOccupancy(r.opts.Width, r.opts.Height)
	placements := make([]Placement, 0, len(freqs))

	fontSize := maxSize
	lastWeight := 1.0
	rs := r.opts.RelativeScaling

	for i, f := range freqs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 && rs != 0 {
			fontSize = int(math.Round((rs*(f.Weight/lastWeight) + (1 - rs)) * float64(fontSize)))
		}

		vertical := rng.Float64() >= r.opts.PreferHorizontal
		triedOther := false
		var p Placement
		placed := false
		for fontSize >= r.opts.MinFontSize {
			w, h := faces.measure(f.Word, fontSize)
			bw, bh := w, h
			if vertical {
				bw, bh = h, w
			}
			col, row, ok := occ.sample(cells(bw+r.opts.Margin), cells(bh+r.opts.Margin), rng)
			if ok {
				p = Placement{
					Word:       f.Word,
					FontSize:   fontSize,
					X:          col*cellSize + r.opts.Margin/2,
					Y:          row*cellSize + r.opts.Margin/2,
					TextWidth:  w,
					TextHeight: h,
					Vertical:   vertical,
					Color:      r.opts.Colors[rng.Intn(len(r.opts.Colors))],
				}
				occ.mark(col, row, cells(bw+r.opts.Margin), cells(bh+r.opts.Margin))
				placed = true
				break
			}
			if !triedOther && r.opts.PreferHorizontal < 1 {
				vertical = !vertical
				triedOther = true
				continue
			}
			fontSize -= r.opts.FontStep
			vertical = false
		}
		if !placed {
			break
		}
		placements = append(placements, p)
		lastWeight = f.Weight
	}

	if len(placements) == 0 {
		return nil, ErrNoSpace
	}
	return placements, nil
}

func cells(px int) int {
	return (px + cellSize - 1) / cellSize
}

func (r *Renderer) draw(placements []Placement, faces *faceCache) image.Image {
	dc := gg.NewContext(r.opts.Width, r.opts.Height)
	dc.SetColor(r.opts.Background)
	dc.Clear()

	for _, p := range placements {
		face := faces.get(p.FontSize)
		ascent := float64(face.Metrics().Ascent.Ceil())
		dc.SetFontFace(face)
		dc.SetColor(p.Color)
		if !p.Vertical {
			dc.DrawString(p.Word, float64(p.X), float64(p.Y)+ascent)
			continue
		}
		b := p.Bounds()
		cx := float64(b.Min.X) + float64(b.Dx())/2
		cy := float64(b.Min.Y) + float64(b.Dy())/2
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), cx, cy)
		dc.DrawString(p.Word, cx-float64(p.TextWidth)/2, cy-float64(p.TextHeight)/2+ascent)
		dc.Pop()
	}
	return dc.Image()
}

// faceCache holds one font.Face per pixel size. Faces are not safe for
// concurrent use, so a cache belongs to a single Render call.
type faceCache struct {
	font  *truetype.Font
	faces map[int]font.Face
}

func newFaceCache(f *truetype.Font) *faceCache {
	return &faceCache{font: f, faces: make(map[int]font.Face)}
}

func (c *faceCache) get(size int) font.Face {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(c.font, &truetype.Options{Size: float64(size)})
	c.faces[size] = face
	return face
}

// measure returns the unrotated text box in pixels.
func (c *faceCache) measure(word string, size int) (int, int) {
	face := c.get(size)
	m := face.Metrics()
	return font.MeasureString(face, word).Ceil(), (m.Ascent + m.Descent).Ceil()
}
