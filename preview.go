package main

import (
	"fmt"
	"io"

	"github.com/Raimguzhinov/bmpcodec/bmp"
)

// coloredBlock печатает block на фоне цвета c (ANSI truecolor).
func coloredBlock(block string, c bmp.ColorRGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, block)
}

func printPreview(w io.Writer, img *bmp.Image) {
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			fmt.Fprint(w, coloredBlock("  ", img.At(x, y)))
		}
		fmt.Fprintln(w)
	}
}
