//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package tui

import (
	"io"

	"github.com/charmbracelet/ssh"
)

// sessionOutput returns the writer the program renders to: the allocated
// PTY when there is one, the session channel otherwise.
func sessionOutput(s ssh.Session) io.Writer {
	pty, _, ok := s.Pty()
	if !ok || s.EmulatedPty() || pty.Slave == nil {
		return s
	}
	return pty.Slave
}
