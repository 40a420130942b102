// meshtool is a CLI utility for inspecting procedurally generated meshes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/guccialex/kiss3d/internal/config"
	"github.com/guccialex/kiss3d/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "normals":
		cmdNormals(cfg, args)
	case "shapes", "ls":
		cmdShapes()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - procedural mesh inspection utility

Usage:
  meshtool [flags] <command> [options]

Commands:
  info <shape>      Show buffer statistics for a generated shape
  normals <shape>   Recompute and print per-vertex normals
  shapes            List available shapes

Examples:
  meshtool info cube
  meshtool normals quad
  meshtool --debug info cube`)
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <shape>")
		os.Exit(1)
	}

	mesh, err := buildShape(args[0], cfg.Rendering.DynamicBuffers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("mesh built", zap.String("shape", args[0]))

	fmt.Printf("Shape:     %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", mesh.NumVertices())
	fmt.Printf("Faces:     %d\n", mesh.NumFaces())
	fmt.Printf("Normals:   %s\n", presence(mesh.Normals().Present(), mesh.Normals().Len()))
	fmt.Printf("UVs:       %s\n", presence(mesh.UVs().Present(), mesh.UVs().Len()))
}

func cmdNormals(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool normals <shape>")
		os.Exit(1)
	}

	mesh, err := buildShape(args[0], cfg.Rendering.DynamicBuffers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := mesh.RecomputeNormals(); err != nil {
		logger.Error("recompute failed", zap.Error(err))
		os.Exit(1)
	}

	_ = mesh.Normals().Read(func(normals []mgl32.Vec3) {
		for i, n := range normals {
			fmt.Printf("%3d: (% .4f, % .4f, % .4f)\n", i, n.X(), n.Y(), n.Z())
		}
	})
}

func cmdShapes() {
	fmt.Println("Available shapes:")
	for _, s := range shapeNames() {
		fmt.Printf("  %s\n", s)
	}
}

func presence(present bool, n int) string {
	if !present {
		return "absent"
	}
	return fmt.Sprintf("%d entries", n)
}
