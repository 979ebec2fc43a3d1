// Package shapes paints the game's placeholder sprites into plain RGBA
// images.
package shapes

import (
	"image"
	"image/color"
	"image/draw"
)

type Kind int

const (
	Player Kind = iota
	Enemy
	Pickup
	Goal
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Enemy:
		return "enemy"
	case Pickup:
		return "pickup"
	case Goal:
		return "goal"
	}
	return "unknown"
}

var eye = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Paint draws a size x size sprite of kind in c. Player and Enemy face
// right; callers mirror them for the other direction.
func Paint(kind Kind, size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	u := max(size/8, 1)

	switch kind {
	case Player:
		fill(img, image.Rect(u, u, size-u, size), c)
		fill(img, image.Rect(size-3*u, 2*u, size-2*u, 3*u), eye)
	case Enemy:
		fill(img, image.Rect(0, 2*u, size, size), c)
		for x := 0; x+2*u <= size; x += 2 * u {
			fill(img, image.Rect(x, u, x+u, 2*u), c)
		}
		fill(img, image.Rect(size-3*u, 3*u, size-2*u, 4*u), eye)
	case Pickup:
		mid := size / 2
		for y := 0; y < size; y++ {
			half := mid - abs(y-mid)
			fill(img, image.Rect(mid-half, y, mid+half, y+1), c)
		}
	case Goal:
		fill(img, image.Rect(u, 0, 2*u, size), c)
		fill(img, image.Rect(2*u, 0, size-u, size/2), c)
	}
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
