package terminal

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns the current window size in character cells
	Size() (width, height int, err error)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// An empty result means the poll timed out
	Read(stopCh <-chan struct{}) ([]byte, error)
}
