package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/artevo/genetic"
	"github.com/lixenwraith/artevo/render"
	"github.com/lixenwraith/artevo/status"
)

// viewer maps the best candidate's rendering onto terminal cells using
// half-block characters: each cell shows two vertically stacked samples,
// foreground for the top and background for the bottom.
type viewer struct {
	screen  tcell.Screen
	ref     *render.Buffer
	reg     *status.Registry
	scratch *render.Buffer
}

func newViewer(screen tcell.Screen, ref *render.Buffer, reg *status.Registry) *viewer {
	return &viewer{
		screen:  screen,
		ref:     ref,
		reg:     reg,
		scratch: render.NewBuffer(ref.Width, ref.Height),
	}
}

func (v *viewer) draw(best *genetic.Chromosome) {
	render.Chromosome(v.scratch, best)

	termW, termH := v.screen.Size()
	if termW < 1 || termH < 2 {
		return
	}

	// Reserve the bottom row for status; each remaining cell covers one
	// column and two pixel rows
	cols, rows := fitCells(v.scratch.Width, v.scratch.Height, termW, termH-1)

	v.screen.Clear()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := blockAverage(v.scratch, cx, cy*2, cols, rows*2)
			bot := blockAverage(v.scratch, cx, cy*2+1, cols, rows*2)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(top[0], top[1], top[2])).
				Background(tcell.NewRGBColor(bot[0], bot[1], bot[2]))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	v.drawStatus(termW, termH-1, best.Fitness)
	v.screen.Show()
}

// fitCells scales the image into the terminal preserving aspect ratio,
// treating a cell as one pixel wide and two pixels tall
func fitCells(imgW, imgH, maxCols, maxRows int) (cols, rows int) {
	cols = maxCols
	rows = cols * imgH / (imgW * 2)
	if rows > maxRows {
		rows = maxRows
		cols = rows * 2 * imgW / imgH
		if cols > maxCols {
			cols = maxCols
		}
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// blockAverage averages the source pixels that map onto one sample of the
// cell grid (gridW x gridH samples over the whole image)
func blockAverage(b *render.Buffer, gx, gy, gridW, gridH int) [3]int32 {
	x0 := gx * b.Width / gridW
	x1 := (gx + 1) * b.Width / gridW
	y0 := gy * b.Height / gridH
	y1 := (gy + 1) * b.Height / gridH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if x1 > b.Width {
		x1 = b.Width
	}
	if y1 > b.Height {
		y1 = b.Height
	}

	var sr, sg, sb, n int64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, bl, _ := render.UnpackARGB(b.At(x, y))
			sr += int64(r)
			sg += int64(g)
			sb += int64(bl)
			n++
		}
	}
	if n == 0 {
		return [3]int32{}
	}
	return [3]int32{int32(sr / n), int32(sg / n), int32(sb / n)}
}

func (v *viewer) drawStatus(width, row int, fitness float64) {
	msg := fmt.Sprintf(" gen %d | best %.1f | evals %d | %.0f ms/gen | q to quit",
		v.reg.Generation.Load(),
		fitness,
		v.reg.Evaluations.Load(),
		v.reg.GenDurationMS.Get())

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(msg) {
			ch = rune(msg[x])
		}
		v.screen.SetContent(x, row, ch, nil, style)
	}
}
