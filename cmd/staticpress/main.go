// Command staticpress builds and serves a staticpress site.
package main

import (
	"fmt"
	"io"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "build":
		err = runBuild(args, os.Stdout)
	case "serve":
		err = runServe(args, os.Stdout)
	case "new":
		err = runNew(args, os.Stdout)
	case "palette":
		err = runPalette(args, os.Stdout)
	case "classes":
		err = runClasses(args, os.Stdout)
	case "version":
		fmt.Printf("staticpress %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `staticpress - A static blog generator built with Go, Echo, and templ

Usage:
  staticpress <command> [arguments]

Commands:
  build         Render the site into the output directory
  serve         Run the dev server with live reload
  new <name>    Create a new staticpress project
  palette       Print the theme colours
  classes       Print the class string of a Badge or Button
  version       Print the staticpress version
  help          Show this help message

Examples:
  staticpress new myblog
  staticpress build --gzip
  staticpress serve --addr :8080
  staticpress classes --component badge --set variant=solid --set color=info`)
}
