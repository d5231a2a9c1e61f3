package main

import (
	"fmt"
	"os"

	"still-life/io"
	"still-life/scene"
)

// glbexport writes the authored still-life parts to a binary glTF file so
// the scene can be inspected in any external viewer.
func main() {
	out := "stilllife.glb"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	parts := scene.StillLifeParts()
	if err := io.ExportGLB(out, parts); err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d parts to %s\n", len(parts), out)
}
