// Package term is a terminal front-end for the simulation built on gocui.
// Every state change goes through a world.Scheduler; the console only keeps a
// copy of the board fed by observer notifications.
package term

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifeboard/internal/config"
	"lifeboard/internal/core"
	"lifeboard/internal/patterns"
	"lifeboard/internal/runstate"
	"lifeboard/internal/world"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"
	headerView = "header"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console renders the board and status in a terminal and turns mouse and key
// events into scheduler commands.
type Console struct {
	sched *world.Scheduler
	cfg   config.Config
	g     *gocui.Gui
	keys  []keyBinding

	mu     sync.Mutex
	board  *board
	status world.Status
	notice string
	seed   int64
}

var stateDescr = map[runstate.State]string{
	runstate.Stopped: aurora.Colorize("stopped", aurora.BlueFg).String(),
	runstate.Running: aurora.Colorize("running", aurora.CyanFg).String(),
}

// Glyph returns the two-column text drawn for a cell in state s.
func Glyph(s core.CellState) string {
	switch s {
	case core.Alive:
		return aurora.Green("██").BgBrightGreen().String()
	case core.Dead:
		return aurora.Red("▒▒").String()
	default:
		return "░░"
	}
}

// NewConsole opens the terminal and installs the key bindings. The console
// is not attached to a world until Attach is called.
func NewConsole(sched *world.Scheduler, cfg config.Config) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	g.Mouse = true

	t := &Console{sched: sched, cfg: cfg, g: g, seed: cfg.Seed}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Random", t.cmdRandom, ""},
		{'p', "P", "Pattern", t.cmdPattern, ""},
		{gocui.KeyArrowLeft, "←↑→↓", "Scroll", t.pan(-1, 0), ""},
		{gocui.KeyArrowRight, "", "", t.pan(1, 0), ""},
		{gocui.KeyArrowUp, "", "", t.pan(0, -1), ""},
		{gocui.KeyArrowDown, "", "", t.pan(0, 1), ""},
		{gocui.MouseLeft, "LMB", "Draw", t.cmdDraw, boardView},
		{gocui.MouseRight, "RMB", "Erase", t.cmdErase, boardView},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %v: %w", kb.name, err)
		}
	}
	return t, nil
}

// Attach copies the current board of w and registers the console as its
// observer. It must run on the goroutine that owns w, before the scheduler
// starts or inside Scheduler.Do.
func (t *Console) Attach(w *world.World) {
	grid := w.Grid()
	t.mu.Lock()
	t.board = newBoard(grid.Cells(), grid.N())
	t.status = w.Status()
	t.mu.Unlock()
	w.AddObserver(t)
}

// Changed implements world.Observer.
func (t *Console) Changed(changes []core.Change, st world.Status) {
	t.mu.Lock()
	if t.board != nil {
		t.board.apply(changes)
	}
	t.status = st
	t.mu.Unlock()
	t.g.Update(t.redraw)
}

// Run blocks in the terminal main loop until the user quits or the scheduler
// stops.
func (t *Console) Run(ctx context.Context) error {
	return runLoop(ctx, t.sched.Done(), t.g.MainLoop, func() {
		t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	})
}

// runLoop runs mainLoop and calls quit once if ctx ends or stop closes
// while the loop is still running.
func runLoop(ctx context.Context, stop <-chan struct{}, mainLoop func() error, quit func()) error {
	var mu sync.Mutex
	exited := false
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		case <-done:
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if !exited {
			quit()
		}
	}()
	err := mainLoop()
	mu.Lock()
	exited = true
	mu.Unlock()
	close(done)
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// Close restores the terminal.
func (t *Console) Close() { t.g.Close() }

func (t *Console) redraw(g *gocui.Gui) error {
	if v, err := g.View(boardView); err == nil {
		t.renderBoard(v)
	}
	if v, err := g.View(statusView); err == nil {
		t.renderStatus(v)
	}
	return nil
}

func (t *Console) renderBoard(v *gocui.View) {
	maxW, maxH := v.Size()
	t.mu.Lock()
	var s string
	if t.board != nil {
		s = t.board.render(maxW, maxH, Glyph)
	}
	t.mu.Unlock()
	v.Clear()
	_, _ = fmt.Fprint(v, s)
}

func (t *Console) renderStatus(v *gocui.View) {
	t.mu.Lock()
	st, notice := t.status, t.notice
	t.mu.Unlock()
	v.Clear()
	_, _ = fmt.Fprintln(v, prop("Generation", "%v", st.Generation))
	_, _ = fmt.Fprintln(v, prop("Live cells", "%v", st.Live))
	_, _ = fmt.Fprintln(v, prop("Step time", "%v", st.StepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, prop("Mode", "%v", stateDescr[st.State]))
	_, _ = fmt.Fprintln(v, prop("Grid", "%v x %v", t.cfg.GridSize, t.cfg.GridSize))
	_, _ = fmt.Fprintln(v, prop("Neighbours", "%v", t.cfg.Neighborhood))
	_, _ = fmt.Fprintln(v, prop("Interval", "%v", t.cfg.StepInterval))
	if notice != "" {
		_, _ = fmt.Fprintln(v)
		_, _ = fmt.Fprintln(v, " "+aurora.Yellow(notice).String())
	}
}

func prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (t *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	const leftColumn = 28
	const minHeight = 12

	if v, err := g.SetView(headerView, -1, -1, maxX+1, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		title := "Game of Life"
		_, _ = fmt.Fprint(v, strings.Repeat(" ", max(0, (maxX-len(title))/2))+title)
	}
	if maxY < minHeight {
		_ = g.DeleteView(statusView)
		_ = g.DeleteView(boardView)
		_ = g.DeleteView(helpView)
		return nil
	}

	if v, err := g.SetView(statusView, 0, 1, leftColumn, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(boardView, leftColumn+1, 1, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}
	return t.redraw(g)
}

func (t *Console) helpLine() string {
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	first := true
	for _, k := range t.keys {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *Console) setNotice(err error) {
	if err != nil {
		t.setMessage(err.Error())
		return
	}
	t.setMessage("")
}

func (t *Console) setMessage(msg string) {
	t.mu.Lock()
	t.notice = msg
	t.mu.Unlock()
	t.g.Update(t.redraw)
}

// post queues fn on the scheduler. A closed scheduler means the loop has
// already exited, so the console quits too.
func (t *Console) post(fn func(*world.World)) error {
	if err := t.sched.Post(fn); err != nil {
		if errors.Is(err, world.ErrClosed) {
			return gocui.ErrQuit
		}
		return err
	}
	return nil
}

func (t *Console) cmdQuit(_ *gocui.View) error {
	_ = t.sched.Post(func(w *world.World) { w.RequestExit() })
	return gocui.ErrQuit
}

func (t *Console) cmdRun(_ *gocui.View) error {
	return t.post(func(w *world.World) { w.Command(runstate.Play) })
}

func (t *Console) cmdStop(_ *gocui.View) error {
	return t.post(func(w *world.World) { w.Command(runstate.Stop) })
}

func (t *Console) cmdClear(_ *gocui.View) error {
	return t.post(func(w *world.World) {
		_, err := w.Clear()
		t.setNotice(err)
	})
}

func (t *Console) cmdRandom(_ *gocui.View) error {
	t.mu.Lock()
	seed := t.seed
	t.seed++
	t.mu.Unlock()
	return t.post(func(w *world.World) {
		_, err := w.Randomize(seed, t.cfg.Density)
		t.setNotice(err)
	})
}

func (t *Console) cmdPattern(_ *gocui.View) error {
	name := t.cfg.Pattern
	if name == "" {
		name = "glider"
	}
	p, ok := patterns.Lookup(name)
	if !ok {
		t.setNotice(fmt.Errorf("unknown pattern %q", name))
		return nil
	}
	return t.post(func(w *world.World) {
		if _, err := w.Load(p.Centered(w.Grid().N())); err != nil {
			t.setNotice(err)
			return
		}
		t.setMessage(p.Name + ": " + p.Descr)
	})
}

func (t *Console) cmdDraw(v *gocui.View) error {
	x, y, ok := t.cursorCell(v)
	if !ok {
		return nil
	}
	return t.post(func(w *world.World) { w.Draw(x, y) })
}

func (t *Console) cmdErase(v *gocui.View) error {
	x, y, ok := t.cursorCell(v)
	if !ok {
		return nil
	}
	return t.post(func(w *world.World) { w.Erase(x, y) })
}

func (t *Console) cursorCell(v *gocui.View) (int, int, bool) {
	cx, cy := v.Cursor()
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.board == nil {
		return 0, 0, false
	}
	return t.board.toGrid(cx, cy)
}

func (t *Console) pan(dx, dy int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		v, err := t.g.View(boardView)
		if err != nil {
			return nil
		}
		w, h := v.Size()
		t.mu.Lock()
		if t.board != nil {
			t.board.pan(dx, dy, w, h)
		}
		t.mu.Unlock()
		return t.redraw(t.g)
	}
}
