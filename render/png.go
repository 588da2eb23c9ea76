package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lazork/lazork/board"
	"github.com/lazork/lazork/solve"
)

// Color palette for the PNG writer.
var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorGrid       = color.RGBA{200, 200, 200, 255}
	colorReflect    = color.RGBA{100, 150, 255, 255}
	colorOpaque     = color.RGBA{80, 80, 80, 255}
	colorRefract    = color.RGBA{255, 150, 100, 255}
	colorFixedEdge  = color.RGBA{255, 0, 0, 255}
	colorPlacedEdge = color.RGBA{0, 0, 0, 255}
	colorBeam       = color.RGBA{255, 0, 255, 255}
	colorEmitter    = color.RGBA{255, 255, 0, 255}
	colorTargetHit  = color.RGBA{0, 255, 0, 255}
	colorTargetMiss = color.RGBA{255, 0, 0, 255}
)

// PNG writes the rendered board: cells on a gray grid with blocked cells
// crossed out, obstacles as filled rectangles colored by kind (fixed ones
// edged red, placed ones black), beam trajectory points as small dots,
// emitters as larger dots and targets colored by hit status. The cell edge
// is WithScale pixels (default 60) and the margin around the grid is one
// cell. A lattice point (lx, ly) maps to pixel
// (margin + lx·scale/2, margin + ly·scale/2).
func PNG(w io.Writer, b *board.Board, res *solve.Result, opts ...Option) error {
	if b == nil {
		return ErrNilBoard
	}
	if res == nil {
		return ErrNilResult
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	scale := o.Scale
	margin := scale
	width := b.Cols()*scale + 2*margin
	height := b.Rows()*scale + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// 1. Background and cell grid.
	fillRect(img, 0, 0, width, height, colorBackground)
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			x := margin + c*scale
			y := margin + r*scale
			strokeRect(img, x, y, x+scale, y+scale, 1, colorGrid)
			if b.Token(board.Cell{Row: r, Col: c}) == 'x' {
				crossCell(img, x, y, scale, colorGrid)
			}
		}
	}

	// 2. Obstacles: fixed from the board, then the placement on top.
	inset := scale / 12
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			cell := board.Cell{Row: r, Col: c}
			if k, ok := b.At(cell); ok {
				drawBlock(img, margin, scale, inset, cell, k, colorFixedEdge)
			}
		}
	}
	for cell, k := range res.Placement {
		drawBlock(img, margin, scale, inset, cell, k, colorPlacedEdge)
	}

	// 3. Beam path, then emitters and targets on top of it.
	toPixel := func(p board.Point) (int, int) {
		return margin + p.X*scale/2, margin + p.Y*scale/2
	}
	beamR := scale / 10
	if beamR < 2 {
		beamR = 2
	}
	for _, p := range o.Trajectory {
		x, y := toPixel(p)
		dot(img, x, y, beamR, colorBeam)
	}
	markR := scale / 6
	if markR < 3 {
		markR = 3
	}
	for _, e := range b.Emitters() {
		x, y := toPixel(e.Pos)
		dot(img, x, y, markR, colorEmitter)
	}
	for _, t := range b.Targets() {
		c := colorTargetMiss
		if _, ok := res.Hits[t]; ok {
			c = colorTargetHit
		}
		x, y := toPixel(t)
		dot(img, x, y, markR, c)
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// drawBlock fills the cell rectangle with the kind's color and edges it.
func drawBlock(img *image.RGBA, margin, scale, inset int, cell board.Cell, k board.BlockKind, edge color.RGBA) {
	x0 := margin + cell.Col*scale + inset
	y0 := margin + cell.Row*scale + inset
	x1 := margin + (cell.Col+1)*scale - inset
	y1 := margin + (cell.Row+1)*scale - inset
	fillRect(img, x0, y0, x1, y1, kindColor(k))
	strokeRect(img, x0, y0, x1, y1, 2, edge)
}

// kindColor maps an obstacle kind to its fill color.
func kindColor(k board.BlockKind) color.RGBA {
	switch k {
	case board.Reflect:
		return colorReflect
	case board.Opaque:
		return colorOpaque
	default:
		return colorRefract
	}
}

// fillRect paints the half-open rectangle [x0,x1)×[y0,y1).
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// strokeRect paints a w-pixel border just inside the rectangle.
func strokeRect(img *image.RGBA, x0, y0, x1, y1, w int, c color.RGBA) {
	fillRect(img, x0, y0, x1, y0+w, c)
	fillRect(img, x0, y1-w, x1, y1, c)
	fillRect(img, x0, y0, x0+w, y1, c)
	fillRect(img, x1-w, y0, x1, y1, c)
}

// crossCell draws the two diagonals of a blocked cell.
func crossCell(img *image.RGBA, x, y, scale int, c color.RGBA) {
	for t := 0; t <= scale; t++ {
		img.SetRGBA(x+t, y+t, c)
		img.SetRGBA(x+scale-t, y+t, c)
	}
}

// dot paints a filled circle of radius r centered on (cx, cy).
func dot(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}
