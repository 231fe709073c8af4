package main

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// World units covered by one terminal cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cellSurface renders onto a character grid. Translucency is approximated
// by scaling colours toward black.
type cellSurface struct {
	screen tcell.Screen
}

func (c *cellSurface) Size() (float64, float64) {
	cols, rows := c.screen.Size()
	return float64(cols) * cellWidth, float64(rows) * cellHeight
}

// cell maps a world point to a grid cell, reporting false when it is off screen.
func (c *cellSurface) cell(x, y float64) (int, int, bool) {
	cols, rows := c.screen.Size()
	cx := int(math.Floor(x / cellWidth))
	cy := int(math.Floor(y / cellHeight))
	return cx, cy, cx >= 0 && cy >= 0 && cx < cols && cy < rows
}

// span returns the cells covered by a world rectangle, clipped to the grid.
func (c *cellSurface) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	cols, rows := c.screen.Size()
	x0 = max(0, int(math.Floor(x/cellWidth)))
	y0 = max(0, int(math.Floor(y/cellHeight)))
	x1 = min(cols, int(math.Ceil((x+w)/cellWidth)))
	y1 = min(rows, int(math.Ceil((y+h)/cellHeight)))
	return
}

func (c *cellSurface) ClearRect(x, y, w, h float64) {
	x0, y0, x1, y1 := c.span(x, y, w, h)
	cols, rows := c.screen.Size()
	if x0 == 0 && y0 == 0 && x1 == cols && y1 == rows {
		c.screen.Clear()
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
		}
	}
}

// FillRect plots rects smaller than a cell as a dot. Larger rects only show
// when mostly opaque, since a cell cannot hold a partial wash.
func (c *cellSurface) FillRect(x, y, w, h float64, col color.Color) {
	r, g, b, a := col.RGBA()
	if w < cellWidth && h < cellHeight {
		cx, cy, ok := c.cell(x, y)
		if !ok {
			return
		}
		fg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
		c.screen.SetContent(cx, cy, '.', nil, tcell.StyleDefault.Foreground(fg))
		return
	}
	if a < 0x8000 {
		return
	}
	bg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	x0, y0, x1, y1 := c.span(x, y, w, h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

func (c *cellSurface) FillCircle(x, y, r float64, col Color, alpha float64) {
	cx, cy, ok := c.cell(x, y)
	if !ok {
		return
	}
	rgb := col.RGBA()
	alpha = math.Max(0, math.Min(1, alpha))
	fg := tcell.NewRGBColor(
		int32(float64(rgb.R)*alpha),
		int32(float64(rgb.G)*alpha),
		int32(float64(rgb.B)*alpha),
	)
	c.screen.SetContent(cx, cy, glyph(alpha), nil, tcell.StyleDefault.Foreground(fg))
}

func glyph(alpha float64) rune {
	switch {
	case alpha >= 0.75:
		return '●'
	case alpha >= 0.4:
		return '•'
	default:
		return '·'
	}
}

func (c *cellSurface) Present() {
	c.screen.Show()
}

// cellCenter maps a grid cell back to world units.
func cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * cellWidth, (float64(cy) + 0.5) * cellHeight
}

func runTerminal(ctx context.Context, cfg *Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	surface := &cellSurface{screen: screen}
	w, h := surface.Size()
	d, err := newDisplay(cfg, surface, w, h, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.loop.Run(ctx, cfg.FrameInterval())
	})
	g.Go(func() error {
		d.spawner.Start(ctx)
		<-ctx.Done()
		d.spawner.Stop()
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		// wake PollEvent
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error {
		pumpEvents(ctx, screen, surface, d, cancel)
		return nil
	})

	log.Info("terminal display running", zap.Float64("width", w), zap.Float64("height", h))
	return g.Wait()
}

// pumpEvents handles terminal input until the user quits or ctx is done.
func pumpEvents(ctx context.Context, screen tcell.Screen, surface *cellSurface, d *display, quit context.CancelFunc) {
	var pressed bool
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			d.viewport.Set(surface.Size())
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
				return
			}
		case *tcell.EventMouse:
			down := ev.Buttons()&tcell.Button1 != 0
			if down && !pressed {
				d.spawner.Click(cellCenter(ev.Position()))
			}
			pressed = down
		}
	}
}
