package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-patch frame: the corners keep their size, the edges and
// the center stretch to fill the target rectangle.
type Nine struct {
	images         *ebiten.Image
	alpha          float64
	R, G, B, Scale float64
	// source cut lines: 0, corner, size-corner, size
	cuts          [4]int
	x, y          float64
	width, height float64
}

// NewNine cuts img with corner pixels kept unscaled on each side.
func NewNine(img *ebiten.Image, corner int, scale float64) *Nine {
	w, _ := img.Size()
	return &Nine{
		images: img,
		alpha:  1,
		R:      1, G: 1, B: 1,
		Scale: scale,
		cuts:  [4]int{0, corner, w - corner, w},
	}
}

func (n *Nine) SetColor(r, g, b, alpha float64) {
	n.R, n.G, n.B, n.alpha = r, g, b, alpha
}

func (n *Nine) SetBounds(x, y, width, height float64) {
	n.x, n.y = x, y
	n.width, n.height = width, height
}

// targets returns the destination offsets and the scale of each band.
func (n *Nine) targets(length float64) ([3]float64, [3]float64) {
	corner := n.Scale * float64(n.cuts[1])
	end := n.Scale * float64(n.cuts[3]-n.cuts[2])
	center := length - corner - end
	src := float64(n.cuts[2] - n.cuts[1])
	return [3]float64{0, corner, length - end},
		[3]float64{n.Scale, center / src, n.Scale}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	xs, sxs := n.targets(n.width)
	ys, sys := n.targets(n.height)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.cuts[col], n.cuts[row], n.cuts[col+1], n.cuts[row+1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sxs[col], sys[row])
			op.GeoM.Translate(n.x+xs[col], n.y+ys[row])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// ringImage renders an anti-aliased ring, used as the nine-patch source.
func ringImage(size int, thickness float64) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c - 0.5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			a := math.Min(1, math.Max(0, outer-d+0.5)) * math.Min(1, math.Max(0, d-(outer-thickness)+0.5))
			img.Set(x, y, color.NRGBA{255, 255, 255, uint8(a * 255)})
		}
	}
	return img
}
