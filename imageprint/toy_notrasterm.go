//go:build !go1.13 || windows
// +build !go1.13 windows

package imageprint

import (
	"flag"
	"fmt"
	"image"
	"io"
)

var (
	forceITerm = flag.Bool("force_iterm", false, "value to force iterm detection to take (implementation variant: no rasterm)")
)

func isTermItermWez() bool {
	return *forceITerm
}

// PrintRasTerm falls back to iTerm2's escape sequence when forced.
func PrintRasTerm(w io.Writer, i image.Image) error {
	if *forceITerm {
		return writeITerm(w, i, "image.png")
	}
	return fmt.Errorf("rasterm not supported below Go 1.13 or on windows")
}
