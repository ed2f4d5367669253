package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Terminal drives a raw-mode ANSI terminal through a Backend
// It is both the size source and the draw sink of the animation
type Terminal struct {
	*Writer

	backend Backend
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal over the given backend
func New(backend Backend) *Terminal {
	return &Terminal{
		Writer:  NewWriter(backendWriter{backend}),
		backend: backend,
	}
}

// Init enters raw mode and the alternate screen, hides the cursor, disables auto-wrap
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)

	// Prevents terminal scroll/wrap on bottom-right corner write
	t.writeRaw(csiAutoWrapOff)
	t.writeRaw(csiClear)

	t.input = newInputReader(t.backend)
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.input != nil {
		t.input.stop()
	}

	// Send anything still buffered before leaving the alternate screen
	t.Writer.Flush()

	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)

	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

// Size returns the current terminal dimensions
func (t *Terminal) Size() (int, int, error) {
	return t.backend.Size()
}

// Quit returns a channel closed when the user presses a quit key
func (t *Terminal) Quit() <-chan struct{} {
	if t.input == nil {
		return nil
	}
	return t.input.quit()
}

func (t *Terminal) writeRaw(data []byte) {
	t.backend.Write(data)
}

// backendWriter adapts Backend to io.Writer for the output buffer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via stty - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
