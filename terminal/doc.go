// Package terminal provides direct ANSI terminal control for the animation.
//
// Features:
//   - Buffered 16-color ANSI output with allocation-free sequence encoding
//   - Raw stdin polling for quit keys
//   - Window size queries via TIOCGWINSZ
//   - A tcell screen adapter exposing the same draw surface
//   - Clean terminal restoration on exit/panic
//
// The ANSI path bypasses terminfo/termcap entirely, emitting direct sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
