package tui

import (
	"io"
	"sync"
)

// terminalFile matches the file the program inspects to enter raw mode and
// read the window size.
type terminalFile interface {
	io.ReadWriteCloser
	Fd() uintptr
}

// syncOutput serialises writes to a terminal shared by the renderer and by
// commands that emit raw escape sequences, so a clipboard or bell write
// never lands in the middle of a frame.
type syncOutput struct {
	mu sync.Mutex
	w  io.Writer
}

func (o *syncOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// syncTerminal is a syncOutput over a real terminal file.
type syncTerminal struct {
	*syncOutput
	f terminalFile
}

func (t syncTerminal) Read(p []byte) (int, error) { return t.f.Read(p) }
func (t syncTerminal) Close() error               { return t.f.Close() }
func (t syncTerminal) Fd() uintptr                { return t.f.Fd() }

// newSyncOutput wraps w, keeping its file descriptor visible when it has one.
func newSyncOutput(w io.Writer) io.Writer {
	o := &syncOutput{w: w}
	if f, ok := w.(terminalFile); ok {
		return syncTerminal{syncOutput: o, f: f}
	}
	return o
}
