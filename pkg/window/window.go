//go:build !tinygo && cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-sphere-raytracer/pkg/display"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Run opens a window, renders the scene once into it and blocks until the window
// is closed or Escape is pressed.
func Run(opts Options) error {
	g := newGame(opts)
	w, h := g.sink.Size()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(w)*opts.scale(), int(h)*opts.scale())
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	opts     Options
	sink     *display.ImageSink
	screen   *ebiten.Image
	rendered bool
	dirty    bool
	stats    renderer.RenderStats
}

func newGame(opts Options) *game {
	canvas := opts.Camera.Canvas()
	return &game{
		opts: opts,
		sink: display.NewImageSink(canvas.Width, canvas.Height),
	}
}

// renderOnce runs the single render pass the first time it is called
func (g *game) renderOnce() {
	if g.rendered {
		return
	}
	g.stats = g.opts.Raytracer.RenderPass(g.opts.Camera, g.sink)
	display.DrawCaption(g.sink, g.opts.Caption)
	g.rendered = true
	g.dirty = true
	if g.opts.OnRendered != nil {
		g.opts.OnRendered(g.sink, g.stats)
	}
}

func (g *game) Update() error {
	g.renderOnce()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		w, h := g.sink.Size()
		g.screen = ebiten.NewImage(int(w), int(h))
	}
	if g.dirty {
		g.screen.WritePixels(g.sink.RGBA().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sink.Size()
	return int(w), int(h)
}
