package main

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	uiloader "github.com/bogrendigital/ui-loader"
)

type cell struct {
	ch    rune
	fg    string
	bg    string
	hasBg bool
	hasFg bool
}

// cellSurface rasterizes Surface calls onto a terminal cell grid. Pixel
// coordinates are divided by the cell aspect before plotting.
type cellSurface struct {
	cells []cell
	cols  int
	rows  int
}

var _ uiloader.Surface = (*cellSurface)(nil)

func newCellSurface(cols, rows int) *cellSurface {
	return &cellSurface{
		cells: make([]cell, cols*rows),
		cols:  cols,
		rows:  rows,
	}
}

func hexColor(c uiloader.Color) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xF],
		digits[c.G>>4], digits[c.G&0xF],
		digits[c.B>>4], digits[c.B&0xF],
	})
}

// toCells converts a pixel rect to a clamped cell rect.
func (s *cellSurface) toCells(r uiloader.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = r.X/cellW, r.Y/cellH
	x1, y1 = (r.X+r.W+cellW-1)/cellW, (r.Y+r.H+cellH-1)/cellH
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.cols {
		x1 = s.cols
	}
	if y1 > s.rows {
		y1 = s.rows
	}
	return x0, y0, x1, y1
}

func (s *cellSurface) FillRect(r uiloader.Rect, c uiloader.Color) {
	if r.Empty() {
		return
	}
	bg := hexColor(c)
	x0, y0, x1, y1 := s.toCells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := y*s.cols + x
			s.cells[i].bg = bg
			s.cells[i].hasBg = true
			s.cells[i].ch = 0
		}
	}
}

func (s *cellSurface) DrawImage(r uiloader.Rect, img image.Image) {
	// A terminal cannot blit; approximate the image with its average color.
	s.FillRect(r, averageColor(img))
	x0, y0, x1, y1 := s.toCells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y*s.cols+x].ch = '▒'
		}
	}
}

func (s *cellSurface) DrawText(r uiloader.Rect, text string, c uiloader.Color, fontSize int) {
	if r.Empty() {
		return
	}
	fg := hexColor(c)
	x, y := r.X/cellW, r.Y/cellH
	if y < 0 || y >= s.rows {
		return
	}
	maxX := (r.X + r.W) / cellW
	if maxX > s.cols {
		maxX = s.cols
	}
	for _, ch := range text {
		if x < 0 || x >= maxX {
			break
		}
		i := y*s.cols + x
		s.cells[i].ch = ch
		s.cells[i].fg = fg
		s.cells[i].hasFg = true
		x++
	}
}

func averageColor(img image.Image) uiloader.Color {
	b := img.Bounds()
	if b.Empty() {
		return uiloader.Color{A: 0xFF}
	}
	var r, g, bl, n uint64
	stepX := (b.Dx() + 15) / 16
	stepY := (b.Dy() + 15) / 16
	if stepX == 0 {
		stepX = 1
	}
	if stepY == 0 {
		stepY = 1
	}
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	return uiloader.Color{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(bl / n),
		A: 0xFF,
	}
}

func (s *cellSurface) render() string {
	var b strings.Builder
	for y := 0; y < s.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < s.cols; x++ {
			c := s.cells[y*s.cols+x]
			ch := c.ch
			if ch == 0 {
				ch = ' '
			}
			style := lipgloss.NewStyle()
			if c.hasBg {
				style = style.Background(lipgloss.Color(c.bg))
			}
			if c.hasFg {
				style = style.Foreground(lipgloss.Color(c.fg))
			}
			b.WriteString(style.Render(string(ch)))
		}
	}
	return b.String()
}
