package terminal

// Cell represents a single terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ResizeChan returns channel that receives resize events
	ResizeChan() <-chan ResizeEvent

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Clear fills screen with specified background color
	Clear(bg RGB)

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event
	PollEvent() Event

	// EnableMouse turns on mouse press reporting
	EnableMouse()
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width, Height int
}

// EventType discriminates input events
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
)

// Key identifies special keys; printable input arrives as KeyRune
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeySpace
	KeyCtrlC
)

// Event is a single input event
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	// X, Y are cell coordinates for EventMouse
	X, Y int
}
