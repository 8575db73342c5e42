package main

import (
	"fmt"
	"os"

	"zoomable/internal/cli"
	"zoomable/internal/gui"
	"zoomable/pkg/viewport"
	"zoomable/pkg/zoomable"
)

func main() {
	if len(os.Args) < 2 {
		cmdView(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "view":
		cmdView(os.Args[2:])

	case "render":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomable render <image> [-o output.png] [-w W] [-h H] [-zoom F] [-at X Y] [-pan DX DY] [-max M]")
			os.Exit(1)
		}
		cmdRender(os.Args[2:])

	case "replay":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomable replay <trace> [-window ms]")
			os.Exit(1)
		}
		cmdReplay(os.Args[2], os.Args[3:])

	case "tui":
		if len(os.Args) < 3 {
			fmt.Println("Usage: zoomable tui <file.txt>")
			os.Exit(1)
		}
		cmdTUI(os.Args[2])

	case "help", "-h", "--help":
		printUsage()

	default:
		// Images and directories open in the viewer
		if viewport.IsImage(command) || isDir(command) {
			cmdView(os.Args[1:])
		} else {
			fmt.Printf("Unknown command: %s\n", command)
			printUsage()
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`
  zoomable - pan/zoom viewer

Usage:
  zoomable <command> [arguments]

Commands:
  view [image|dir]             Open the image viewer
  render <image> [options]     Render one zoomed viewport to PNG
    -o <output.png>            Output file (default: output.png)
    -w <width> -h <height>     Viewport size (default: 800x600)
    -zoom <factor>             Zoom factor (default: 1)
    -at <x> <y>                Focal point (default: viewport center)
    -pan <dx> <dy>             Pan delta (default: 0 0)
    -max <scale>               Maximum scale (default: 5)
  replay <trace> [-window ms]  Replay a gesture trace and print each state
  tui <file.txt>               View a text file in the terminal
  <image|dir>                  Open in the viewer (shortcut)

Examples:
  zoomable photos/
  zoomable render photo.jpg -zoom 2.5 -at 0 0 -o corner.png
  zoomable replay pinch.trace -window 16`)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func cmdView(args []string) {
	app, err := gui.NewApp(zoomable.ElasticOptions())
	if err != nil {
		fmt.Printf("Error creating viewer: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 0 {
		app.RunWithPath(args[0])
	} else {
		app.Run()
	}
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

