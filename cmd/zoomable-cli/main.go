// CLI-only version (no GUI dependencies)
package main

import (
	"fmt"
	"os"

	"zoomable/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "render":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomable-cli render <image> [-o output.png] [-w W] [-h H] [-zoom F] [-at X Y] [-pan DX DY] [-max M]")
			os.Exit(1)
		}
		cmdRender(os.Args[2:])

	case "replay":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomable-cli replay <trace> [-window ms]")
			os.Exit(1)
		}
		cmdReplay(os.Args[2], os.Args[3:])

	case "tui":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomable-cli tui <file.txt>")
			os.Exit(1)
		}
		cmdTUI(os.Args[2])

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`
  zoomable - pan/zoom viewer (CLI version)

Usage:
  zoomable-cli <command> [arguments]

Commands:
  render <image> [options]     Render one zoomed viewport to PNG
    -o <output.png>            Output file (default: output.png)
    -w <width> -h <height>     Viewport size (default: 800x600)
    -zoom <factor>             Zoom factor (default: 1)
    -at <x> <y>                Focal point (default: viewport center)
    -pan <dx> <dy>             Pan delta (default: 0 0)
    -max <scale>               Maximum scale (default: 5)
  replay <trace> [-window ms]  Replay a gesture trace and print each state
  tui <file.txt>               View a text file in the terminal

Examples:
  zoomable-cli render photo.jpg -zoom 2.5 -at 0 0 -o corner.png
  zoomable-cli replay pinch.trace -window 16
  zoomable-cli tui README.md`)
}

func cmdRender(args []string) {
	ra, err := cli.ParseRenderArgs(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s at %gx%g...\n", ra.Input, ra.Width, ra.Height)

	st, err := cli.Render(ra)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s (scale %.3f, offset %.1f, %.1f)\n", ra.Output, st.Scale(), st.OffsetX(), st.OffsetY())
}

func cmdReplay(path string, args []string) {
	window, err := cli.ParseWindow(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := cli.Replay(os.Stdout, path, window); err != nil {
		fmt.Printf("Error replaying trace: %v\n", err)
		os.Exit(1)
	}
}

func cmdTUI(path string) {
	if err := cli.RunTUI(path); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
