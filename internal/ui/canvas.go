package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/cardswap/internal/motion"
)

type cell struct {
	r   rune
	ink ink
}

// canvas is a fixed grid of styled runes. Later draws paint over earlier ones.
type canvas struct {
	w, h  int
	cells []cell
}

// clip is an optional drawing bound in cell coordinates.
type clip struct {
	x0, y0, x1, y1 int
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([]cell, c.w*c.h)
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) bounds() clip { return clip{0, 0, c.w, c.h} }

func (c *canvas) set(x, y int, r rune, k ink, b clip) {
	if x < b.x0 || y < b.y0 || x >= b.x1 || y >= b.y1 {
		return
	}
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, ink: k}
}

// box draws a rounded border around r, fills the interior with blanks and centers label.
func (c *canvas) box(r motion.Rect, label string, k ink, b clip) {
	x, y, w, h := r.Cells()
	if w < 2 || h < 2 {
		return
	}
	border := lipgloss.RoundedBorder()
	c.frame(x, y, w, h, border, k, b)
	for yy := y + 1; yy < y+h-1; yy++ {
		for xx := x + 1; xx < x+w-1; xx++ {
			c.set(xx, yy, ' ', k, b)
		}
	}
	c.label(x, y, w, h, label, k, b)
}

// dashed draws an empty slot outline.
func (c *canvas) dashed(r motion.Rect, k ink, b clip) {
	x, y, w, h := r.Cells()
	if w < 2 || h < 2 {
		return
	}
	border := lipgloss.Border{
		Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	}
	c.frame(x, y, w, h, border, k, b)
}

func (c *canvas) frame(x, y, w, h int, border lipgloss.Border, k ink, b clip) {
	first := func(s string) rune { return []rune(s)[0] }
	for xx := x + 1; xx < x+w-1; xx++ {
		c.set(xx, y, first(border.Top), k, b)
		c.set(xx, y+h-1, first(border.Bottom), k, b)
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		c.set(x, yy, first(border.Left), k, b)
		c.set(x+w-1, yy, first(border.Right), k, b)
	}
	c.set(x, y, first(border.TopLeft), k, b)
	c.set(x+w-1, y, first(border.TopRight), k, b)
	c.set(x, y+h-1, first(border.BottomLeft), k, b)
	c.set(x+w-1, y+h-1, first(border.BottomRight), k, b)
}

func (c *canvas) label(x, y, w, h int, s string, k ink, b clip) {
	runes := []rune(s)
	if len(runes) == 0 || h < 3 {
		return
	}
	if inner := w - 2; len(runes) > inner {
		runes = runes[:max(inner, 0)]
	}
	lx := x + (w-len(runes))/2
	ly := y + (h-1)/2
	for i, r := range runes {
		c.set(lx+i, ly, r, k, b)
	}
}

// text writes s left to right starting at (x, y).
func (c *canvas) text(x, y int, s string, k ink) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, k, c.bounds())
	}
}

// plain returns the grid without styling.
func (c *canvas) plain() string {
	var sb strings.Builder
	for y := range c.h {
		row := c.cells[y*c.w : (y+1)*c.w]
		for _, cl := range row {
			sb.WriteRune(cl.r)
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String renders the grid, styling each run of equally inked cells once.
func (c *canvas) String() string {
	var sb strings.Builder
	for y := range c.h {
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].ink == row[start].ink {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:i] {
				run.WriteRune(cl.r)
			}
			if k := row[start].ink; k == inkNone {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(inks[k].Render(run.String()))
			}
			start = i
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
