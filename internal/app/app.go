//go:build ebiten

package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
	"lifeboard/internal/runstate"
	"lifeboard/internal/ui"
)

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	camera  *ui.Camera
	palette render.Palette

	n       int
	scale   int
	width   int
	height  int
	mx, my  int
	hover   core.Coord
	onBoard bool
}

// New constructs a Game that draws d's world at scale pixels per cell.
func New(d *Driver, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	n := d.World().Grid().N()
	w, h := ui.ScreenSize(n, scale)
	return &Game{
		driver:  d,
		painter: render.NewGridPainter(n, n),
		hud:     ui.NewHUD(n*scale, w),
		overlay: ui.NewOverlay(scale),
		camera:  ui.NewCamera(),
		palette: render.DefaultPalette(),
		n:       n,
		scale:   scale,
		width:   w,
		height:  h,
	}
}

// Update captures the pointer and keyboard and advances the driver.
func (g *Game) Update() error {
	f := g.capture()
	if err := g.driver.Advance(f); err != nil {
		if errors.Is(err, ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) capture() Frame {
	var f Frame
	boardH := g.n * g.scale
	g.camera.Update(ui.CameraInput{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		ZoomIn:  ebiten.IsKeyPressed(ebiten.KeyE),
		ZoomOut: ebiten.IsKeyPressed(ebiten.KeyQ),
		Halt:    ebiten.IsKeyPressed(ebiten.KeySpace),
	}, g.width, boardH)

	g.mx, g.my = ebiten.CursorPosition()
	g.onBoard = false
	if g.my < boardH {
		g.hover, g.onBoard = ui.CellAt(g.mx, g.my, g.scale, g.n, g.camera.View)
	}
	if g.onBoard {
		c := g.hover
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			f.Draw = &c
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			f.Erase = &c
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch g.hud.Click(g.mx, g.my) {
		case ui.ActionPlay:
			f.Command = runstate.Play
		case ui.ActionStop:
			f.Command = runstate.Stop
		case ui.ActionExit:
			f.Exit = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Exit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if g.driver.World().State() == runstate.Running {
			f.Command = runstate.Stop
		} else {
			f.Command = runstate.Play
		}
	}
	f.Clear = inpututil.IsKeyJustPressed(ebiten.KeyC)
	f.Randomize = inpututil.IsKeyJustPressed(ebiten.KeyR)
	f.Pattern = inpututil.IsKeyJustPressed(ebiten.KeyP)
	return f
}

// Draw renders the board through the camera, the hovered cell and the
// control bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	w := g.driver.World()
	v := g.camera.View

	var geo ebiten.GeoM
	_, _, size := v.CellRect(core.Coord{}, g.scale)
	geo.Scale(size, size)
	geo.Translate(-v.X, -v.Y)
	g.painter.Blit(screen, w.Grid().Cells(), g.palette, geo)
	if g.onBoard && w.State() == runstate.Stopped {
		g.overlay.Draw(screen, g.hover, v)
	}
	g.hud.Draw(screen, w.Status(), g.mx, g.my, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Layout returns the logical screen size: the board plus the control bar,
// widened to fit the buttons.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Size is the preferred window size.
func (g *Game) Size() (int, int) { return g.width, g.height }
