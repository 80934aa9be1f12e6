// meshinfo is a CLI utility for inspecting generated cube face meshes
// without a window or GL context.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/cubeforge/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "dump":
		err = cmdDump(args)
	case "table":
		err = writeTable(os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshinfo - cube face mesh inspector

Usage:
  meshinfo <command> [options] [faces]

Commands:
  info [-format text|yaml] <faces>   Describe the model built from faces
  dump <faces>                       Print every vertex and triangle
  table                              Counts for all 64 face sets

Faces are names or short forms separated by commas: px,nx,py,ny,pz,nz,
+x,-z, left/bottom/front/right/top/back, all, none, or a mask 0..63.

Examples:
  meshinfo info all
  meshinfo info -format yaml px,nx
  meshinfo dump top`)
}

func parseFaces(args []string) (mesh.DirectionSet, error) {
	if len(args) == 0 {
		return mesh.All, nil
	}
	return mesh.ParseDirectionSet(strings.Join(args, ","))
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	format := fs.String("format", "text", "Output format: text or yaml")
	fs.Parse(args)

	dirs, err := parseFaces(fs.Args())
	if err != nil {
		return err
	}
	r, err := buildReport(dirs)
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		writeText(os.Stdout, r)
		return nil
	case "yaml":
		return writeYAML(os.Stdout, r)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func cmdDump(args []string) error {
	dirs, err := parseFaces(args)
	if err != nil {
		return err
	}
	return writeDump(os.Stdout, dirs)
}
