package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/awall/delver/internal/core/space"
	"github.com/awall/delver/internal/render"
)

// rectIndices splits the four corners returned by space.Rect.Corners into two
// triangles.
var rectIndices = []uint16{0, 1, 2, 1, 3, 2}

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	// whiteSubImage is the 1x1 source texture for solid fills. It is cut out of
	// a 3x3 image so sampling never bleeds past its edges.
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	face          *text.GoXFace
}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{
		vertices: make([]ebiten.Vertex, 4),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *EbitenRenderer) white() *ebiten.Image {
	if r.whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.whiteSubImage
}

// FillRect draws rect through m as two triangles.
func (r *EbitenRenderer) FillRect(dst render.Image, rect space.Rect, m space.Affine, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	cr, cg, cb, ca := colorScale(clr)

	for i, corner := range rect.Corners() {
		p := m.Apply(corner)
		r.vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	ebitenImg.DrawTriangles(r.vertices, rectIndices, r.white(), &ebiten.DrawTrianglesOptions{})
}

// DrawText draws text on the destination image with the basic 7x13 font.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = float64(basicfont.Face7x13.Height)
	text.Draw(ebitenImg, str, r.face, op)
}

// colorScale converts clr to the premultiplied vertex color ebiten expects.
func colorScale(clr color.Color) (cr, cg, cb, ca float32) {
	r, g, b, a := clr.RGBA()
	return float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}
