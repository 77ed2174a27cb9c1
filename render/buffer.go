package render

import (
	"math"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying on export
type Cell = terminal.Cell

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src, 255)
	BlendMax                      // Dst = max(Dst, Src) per channel
	BlendScreen                   // Dst = 1 - (1-Dst)*(1-Src)
)

// RenderBuffer is a compositor backed by a terminal.Cell array
// Cells are row-major: cells[y*width + x]
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions and
// background color
func NewRenderBuffer(width, height int, bg RGB) *RenderBuffer {
	b := &RenderBuffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
		bg:     bg,
	}
	b.Clear()
	return b
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts buffer dimensions, reallocating only if capacity is
// insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the background color using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// blendBg applies the blend op to a background channel
func blendBg(dst, src RGB, mode BlendMode, alpha float64) RGB {
	switch mode {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return src
	}
}

// SetBg composites a background color into a cell
func (b *RenderBuffer) SetBg(x, y int, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = blendBg(dst.Bg, bg, mode, alpha)
}

// Bg returns the background color at a cell, or the clear color when
// out of bounds
func (b *RenderBuffer) Bg(x, y int) RGB {
	if !b.inBounds(x, y) {
		return b.bg
	}
	return b.cells[y*b.width+x].Bg
}

// SetText writes a string with the given foreground, preserving cell
// backgrounds
func (b *RenderBuffer) SetText(x, y int, text string, fg RGB) {
	for i, r := range text {
		if !b.inBounds(x+i, y) {
			continue
		}
		dst := &b.cells[y*b.width+x+i]
		dst.Rune = r
		dst.Fg = fg
	}
}

// FillCircle rasterizes a filled circle at (cx, cy) in cell coordinates
// with additive light accumulation. Vertical distance is stretched by the
// cell aspect ratio so circles look round on a terminal grid. The color
// fades toward the rim; opacity scales the whole disc.
func (b *RenderBuffer) FillCircle(cx, cy, r float64, color RGB, opacity float64) {
	if r <= 0 || opacity <= 0 {
		return
	}

	// The cell under the center always lights up: a distance test against
	// cell centers can miss small discs entirely once the aspect stretch
	// is applied
	ix, iy := int(math.Floor(cx)), int(math.Floor(cy))
	if b.inBounds(ix, iy) {
		dst := &b.cells[iy*b.width+ix]
		dst.Bg = Add(dst.Bg, Scale(color, opacity), 1.0)
	}
	if r < 1.0 {
		return
	}

	ry := r / parameter.CellAspect
	minX := int(cx - r - 1)
	maxX := int(cx + r + 1)
	minY := int(cy - ry - 1)
	maxY := int(cy + ry + 1)

	if minX < 0 {
		minX = 0
	}
	if maxX >= b.width {
		maxX = b.width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= b.height {
		maxY = b.height - 1
	}

	for y := minY; y <= maxY; y++ {
		dy := (float64(y) + 0.5 - cy) * parameter.CellAspect
		rowOff := y * b.width
		for x := minX; x <= maxX; x++ {
			if x == ix && y == iy {
				// Already lit above
				continue
			}
			dx := float64(x) + 0.5 - cx

			distSq := dx*dx + dy*dy
			if distSq > r*r {
				continue
			}

			// Soft falloff toward the rim keeps sub-cell circles visible
			norm := distSq / (r * r)
			intensity := opacity * (1.0 - 0.5*norm)

			dst := &b.cells[rowOff+x]
			dst.Bg = Add(dst.Bg, Scale(color, intensity), 1.0)
		}
	}
}

// FlushToTerminal writes the buffer contents to the terminal
func (b *RenderBuffer) FlushToTerminal(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
