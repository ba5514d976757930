//go:build !windows

package main

import (
	"syscall"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
)

// setRawIO switches fd 0 into raw mode for the line-editing-free REPL
// prompt, returning a restore function. Adapted from the termios dance any
// interactive terminal program needs: disable canonical mode and echo,
// read one byte at a time, turn off flow control so `^S`/`^Q` reach the
// program instead of the tty driver.
func setRawIO() (func(), error) {
	var saved syscall.Termios
	if err := termios.Tcgetattr(0, &saved); err != nil {
		return nil, errors.Wrap(err, "Tcgetattr failed")
	}
	raw := saved
	raw.Iflag &^= syscall.IGNBRK | syscall.ISTRIP | syscall.IXON | syscall.IXOFF
	raw.Iflag |= syscall.BRKINT | syscall.IGNPAR
	raw.Lflag &^= syscall.ICANON | syscall.IEXTEN | syscall.ECHO
	raw.Cc[syscall.VMIN] = 1
	raw.Cc[syscall.VTIME] = 0
	if err := termios.Tcsetattr(0, termios.TCSANOW, &raw); err != nil {
		termios.Tcsetattr(0, termios.TCSANOW, &saved)
		return nil, errors.Wrap(err, "Tcsetattr failed")
	}
	return func() { termios.Tcsetattr(0, termios.TCSANOW, &saved) }, nil
}
