package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-diffuse-raytracer/pkg/integrator"
	"github.com/df07/go-diffuse-raytracer/pkg/output"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
	"github.com/df07/go-diffuse-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	sceneName := fs.String("scene", "default", "Built-in scene name, scene name under scenes/, or path to a .json scene")
	outPath := fs.String("out", "", "Output file (.ppm or .png); default output/<scene>/render_<timestamp>.ppm")
	width := fs.Int("width", 0, "Image width in pixels (overrides the scene)")
	samples := fs.Int("samples", 0, "Samples per pixel (overrides the scene)")
	depth := fs.Int("depth", 0, "Maximum bounce depth (overrides the scene)")
	seed := fs.Int64("seed", 0, "Random seed (overrides the scene)")
	integratorType := fs.String("integrator", "diffuse", "Integrator: 'diffuse' or 'normal'")
	channels := fs.String("channels", "clamp", "Out-of-range color handling: 'clamp' or 'wrap'")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *help {
		return printHelp(fs, stdout)
	}

	logger := renderer.NewWriterLogger(stdout)

	selectedScene, err := scene.Create(*sceneName, logger)
	if err != nil {
		return err
	}

	// Explicit flags override the scene's own settings
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			if *width <= 0 {
				flagErr = fmt.Errorf("-width must be positive, got %d", *width)
			}
			selectedScene.Width = *width
		case "samples":
			if *samples <= 0 {
				flagErr = fmt.Errorf("-samples must be positive, got %d", *samples)
			}
			selectedScene.SamplingConfig.SamplesPerPixel = *samples
		case "depth":
			if *depth <= 0 {
				flagErr = fmt.Errorf("-depth must be positive, got %d", *depth)
			}
			selectedScene.SamplingConfig.MaxDepth = *depth
		case "seed":
			selectedScene.SamplingConfig.Seed = *seed
		}
	})
	if flagErr != nil {
		return flagErr
	}

	mode, err := output.ParseChannelMode(*channels)
	if err != nil {
		return err
	}

	var integ integrator.Integrator
	switch *integratorType {
	case "diffuse":
		integ = integrator.NewDiffuseIntegrator(selectedScene.Background)
	case "normal":
		integ = integrator.NewNormalIntegrator(selectedScene.Background)
	default:
		return fmt.Errorf("unknown integrator %q (want diffuse or normal)", *integratorType)
	}

	filename := *outPath
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", outputDirName(selectedScene.Name), fmt.Sprintf("render_%s.ppm", timestamp))
	}

	fmt.Fprintf(stdout, "Using %s scene with %s integrator...\n", selectedScene.Name, *integratorType)

	raytracer := renderer.NewRaytracer(
		selectedScene.World,
		renderer.NewCamera(selectedScene.CameraConfig),
		integ,
		selectedScene.Width,
		selectedScene.Height(),
		logger,
	)
	raytracer.SetSamplingConfig(selectedScene.SamplingConfig)

	img, _, err := raytracer.RenderPass()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := output.SaveFile(filename, img, mode); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Render saved as %s (channels: %s)\n", filename, mode)
	return nil
}

func printHelp(fs *flag.FlagSet, stdout io.Writer) error {
	fmt.Fprintln(stdout, "Diffuse Raytracer")
	fmt.Fprintln(stdout, "Usage: raytracer [options]")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(stdout)

	scenes, err := scene.ListAllScenes(scene.DefaultScenesDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Available scenes:")
	for _, info := range scenes {
		fmt.Fprintf(stdout, "  %-16s %s", info.ID, info.DisplayName)
		if info.Description != "" {
			fmt.Fprintf(stdout, " - %s", info.Description)
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

// outputDirName turns a scene name into a directory name
func outputDirName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
	if name == "" {
		return "scene"
	}
	return name
}
