package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive returns true when stdin and stdout are both terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// MapArea returns how many cells fit in the terminal after reserving
// reservedRows lines and reservedCols columns for panels. Each cell is two
// columns wide.
func MapArea(reservedRows, reservedCols int) (rows, cols int) {
	w, h := GetSize()
	rows = max(5, h-reservedRows)
	cols = max(5, (w-reservedCols)/2)
	return rows, cols
}
