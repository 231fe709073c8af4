package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// canvasSurface draws into an offscreen image that persists between ticks.
type canvasSurface struct {
	img *ebiten.Image
}

// resize reallocates the canvas when the window size changed.
func (c *canvasSurface) resize(w, h int) {
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *canvasSurface) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvasSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	if r.Eq(c.img.Bounds()) {
		c.img.Clear()
		return
	}
	if sub, ok := c.img.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

func (c *canvasSurface) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), col, true)
}

func (c *canvasSurface) FillCircle(cx, cy, r float64, col Color, alpha float64) {
	rgb := col.RGBA()
	a := uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: a}, true)
}

// Game is the windowed host. Each tick it feeds pointer input to the spawn
// scheduler and draws one frame onto the canvas; Draw only presents it.
type Game struct {
	ctx     context.Context
	d       *display
	surface *canvasSurface
	touches []ebiten.TouchID
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	w, h := g.d.viewport.Size()
	if w < 1 || h < 1 {
		return nil
	}
	g.surface.resize(int(w), int(h))
	g.d.loop.Frame()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface.img != nil {
		screen.DrawImage(g.surface.img, nil)
	}
}

// Layout follows the window size; the spawn bounds follow it too.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.d.viewport.Set(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// handleInput turns clicks and taps into shells
func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.d.spawner.Click(float64(x), float64(y))
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.d.spawner.Click(float64(x), float64(y))
	}
}

func runWindow(ctx context.Context, cfg *Config, log *zap.Logger) error {
	surface := &canvasSurface{}
	d, err := newDisplay(cfg, surface, float64(cfg.Display.Width), float64(cfg.Display.Height), log)
	if err != nil {
		return err
	}
	g := &Game{ctx: ctx, d: d, surface: surface}

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.FrameRate)

	d.loop.Start()
	defer d.loop.Stop()
	d.spawner.Start(ctx)
	defer d.spawner.Stop()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
