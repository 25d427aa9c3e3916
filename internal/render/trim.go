package render

import (
	"image"
	"image/draw"
)

// contentBounds is the union of all word boxes.
func contentBounds(placements []Placement) image.Rectangle {
	var r image.Rectangle
	for _, p := range placements {
		r = r.Union(p.Bounds())
	}
	return r
}

func crop(img image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}
