package terminal

import (
	"sync"
	"time"
)

// Quit keys: q, Q, Ctrl-C, standalone Escape
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// inputReader polls the backend and closes quitCh on the first quit key
type inputReader struct {
	backend Backend
	quitCh  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
	mu      sync.Mutex
	running bool
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		quitCh:  make(chan struct{}),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	Go(r.readLoop)
}

func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Wait with timeout - don't block forever if read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(200 * time.Millisecond):
	}
}

func (r *inputReader) quit() <-chan struct{} {
	return r.quitCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			// Input is gone; treat as a request to stop
			r.signalQuit()
			return
		}

		select {
		case <-r.stopCh:
			return
		default:
		}

		if isQuit(data) {
			r.signalQuit()
			return
		}
	}
}

func (r *inputReader) signalQuit() {
	r.once.Do(func() { close(r.quitCh) })
}

// isQuit reports whether a read chunk carries a quit key
// A lone ESC byte is the Escape key; ESC followed by more bytes is a sequence and ignored
func isQuit(data []byte) bool {
	if len(data) == 1 && data[0] == keyEscape {
		return true
	}
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 'q', 'Q', keyCtrlC:
			return true
		case keyEscape:
			// Skip the rest of an escape sequence up to its final byte
			i++
			if i < len(data) && data[i] == '[' {
				i++
				for i < len(data) && (data[i] < 0x40 || data[i] > 0x7e) {
					i++
				}
			}
		}
	}
	return false
}
