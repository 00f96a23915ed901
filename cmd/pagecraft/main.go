package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "serve":
		if err := runServe(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("pagecraft version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pagecraft - drag-and-drop page builder and static site generator

Usage:
  pagecraft <command> [arguments]

Commands:
  serve                 Run the editor API server
  demo                  Build a showcase page and export it
  version               Print version
  help                  Show this help

Options for serve:
  -config file          YAML config file
  -addr addr            Listen address (default :8080)
  -title title          Generated page title
  -log-level level      debug, info, warn or error
  -archive-name name    Download name of the exported site

Options for demo:
  -o file               Output archive (default website.zip)
  -dir dir              Write loose files to dir instead of an archive
  -title title          Generated page title

Environment:
  PAGECRAFT_ADDR, PAGECRAFT_SIGNING_KEY, PAGECRAFT_LOG_LEVEL,
  PAGECRAFT_TITLE, PAGECRAFT_ARCHIVE_NAME override the config file.
  Flags override the environment.

Examples:
  pagecraft serve -config pagecraft.yaml
  pagecraft demo -o site.zip
  pagecraft demo -dir ./public`)
}
