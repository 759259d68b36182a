//go:build !tinygo && cgo

package hal

import (
	"image"

	"nanoshader/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows the framebuffer scaled by
// p.Scale. It blocks until the window closes or the step function fails.
func RunWindow(p Profile, newApp func(HAL) func() error) error {
	if err := p.Validate(); err != nil {
		return err
	}
	h := New(p).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("nanoshader " + p.Name + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(p.Width*p.Scale, p.Height*p.Scale)
	ebiten.SetTPS(p.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	g.img = fb.Snapshot(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
