package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the destination is not a terminal.
const DefaultWidth = 80

// Width returns the column count of w when it is a terminal.
func Width(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
