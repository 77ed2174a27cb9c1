package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// screenTerminal implements Terminal over a tcell.Screen
type screenTerminal struct {
	screen      tcell.Screen
	resizeCh    chan ResizeEvent
	mouse       bool
	lastButtons tcell.ButtonMask
}

// New creates an uninitialized terminal; call Init before use
func New() Terminal {
	return &screenTerminal{
		resizeCh: make(chan ResizeEvent, 8),
	}
}

func (t *screenTerminal) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.HideCursor()
	t.screen = screen
	if t.mouse {
		t.screen.EnableMouse()
	}
	return nil
}

func (t *screenTerminal) Fini() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

func (t *screenTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *screenTerminal) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

func toTcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *screenTerminal) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(toTcellColor(c.Fg)).
				Background(toTcellColor(c.Bg))
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
	t.screen.Show()
}

func (t *screenTerminal) Clear(bg RGB) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(toTcellColor(bg)))
	t.screen.Show()
}

func (t *screenTerminal) SetCursorVisible(visible bool) {
	if visible {
		t.screen.ShowCursor(0, 0)
	} else {
		t.screen.HideCursor()
	}
}

func (t *screenTerminal) Sync() {
	t.screen.Sync()
}

func (t *screenTerminal) EnableMouse() {
	t.mouse = true
	if t.screen != nil {
		t.screen.EnableMouse()
	}
}

// PollEvent blocks and translates tcell events; mouse motion and button
// release are swallowed so only presses surface
func (t *screenTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			return t.translateKey(tev)

		case *tcell.EventMouse:
			buttons := tev.Buttons() & tcell.ButtonMask(0xff)
			pressed := buttons &^ t.lastButtons
			t.lastButtons = buttons
			if pressed&tcell.Button1 != 0 {
				x, y := tev.Position()
				return Event{Type: EventMouse, X: x, Y: y}
			}

		case *tcell.EventResize:
			w, h := tev.Size()
			select {
			case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
			}
			return Event{Type: EventResize}

		case nil:
			// Screen finalized
			return Event{Type: EventInterrupt}
		}
	}
}

func (t *screenTerminal) translateKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter}
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return Event{Type: EventKey, Key: KeySpace, Rune: r}
		}
		return Event{Type: EventKey, Key: KeyRune, Rune: r}
	default:
		return Event{Type: EventKey, Key: KeyNone}
	}
}
