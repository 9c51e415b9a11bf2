package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/display"
	"github.com/df07/go-sphere-raytracer/pkg/logging"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/df07/go-sphere-raytracer/pkg/window"
)

const appName = "sphere-raytracer"

// app holds the state shared by all commands once the root pre-run has loaded it
type app struct {
	configFile string
	config     *config.Config
	logger     zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Recursive ray tracer for spheres",
		Long: `Renders a fixed scene of spheres lit by ambient, point and directional
lights, with hard shadows, specular highlights and mirror reflections.

Settings come from flags, RAYTRACER_* environment variables, raytracer.yaml
(in the working directory or $HOME/.raytracer) and built-in defaults, in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			return a.load(cmd)
		},
	}

	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: search for raytracer.yaml)")
	flags.String("scene", defaults.Scene, "built-in scene to render (see 'scenes')")
	flags.Int("width", defaults.Width, "canvas width in pixels")
	flags.Int("height", defaults.Height, "canvas height in pixels")
	flags.Float64("viewport-width", defaults.ViewportWidth, "viewport width in world units")
	flags.Float64("viewport-height", defaults.ViewportHeight, "viewport height in world units")
	flags.Int("max-depth", defaults.MaxDepth, "reflection recursion limit")
	flags.String("shadow-mode", defaults.ShadowMode, "blocked light handling: 'skip' or 'abort'")
	flags.String("output", defaults.OutputDir, "output directory for rendered images")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	flags.Bool("log-pretty", defaults.LogPretty, "human-readable log output")
	flags.Bool("caption", defaults.Caption, "draw scene name and render time onto the image")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newWindowCmd(a),
		newScenesCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger = logger
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the scene to a PNG file",
		Long:  "Renders one pass and saves it as <output>/<scene>/render_<timestamp>.png",
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, err := runRender(a.config, a.logger)
			if err != nil {
				a.logger.Error().Err(err).Msg("Render failed")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filename)
			return nil
		},
	}
}

func newWindowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Render the scene into a desktop window",
		Long:  "Opens a window, renders one pass into it and idles until the window is closed or Escape is pressed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(a.config, a.logger)
		},
	}
}

func newScenesCmd() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listScenes(cmd.OutOrStdout(), asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the scene list as YAML")
	return cmd
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName + ".yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

// createScene returns the built-in scene with the given name
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Lookup(strings.TrimSpace(sceneType))
}

// createOutputDir creates <base>/<scene> and returns its path
func createOutputDir(base, sceneType string) (string, error) {
	outputDir := filepath.Join(base, filepath.Base(sceneType))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}

func newRaytracer(cfg *config.Config, logger zerolog.Logger) (*renderer.Raytracer, *renderer.Camera, error) {
	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().
		Str("scene", selectedScene.Name()).
		Int("spheres", selectedScene.GetPrimitiveCount()).
		Int("lights", len(selectedScene.Lights())).
		Msg("Starting Sphere Raytracer...")

	rt := renderer.NewRaytracer(selectedScene, cfg.TraceConfig())
	rt.SetLogger(&logger)
	return rt, renderer.NewCamera(cfg.CameraConfig()), nil
}

func captionText(sceneName string, width, height int, stats renderer.RenderStats) string {
	return fmt.Sprintf("%s %dx%d %v", sceneName, width, height, stats.Duration.Round(time.Millisecond))
}

func logStats(logger zerolog.Logger, stats renderer.RenderStats) {
	logger.Info().
		Dur("duration", stats.Duration).
		Int("pixels", stats.TotalPixels).
		Int("primary_rays", stats.PrimaryRays).
		Int("reflection_rays", stats.ReflectionRays).
		Int("shadow_rays", stats.ShadowRays).
		Int("background_pixels", stats.BackgroundPixels).
		Float64("avg_luminance", stats.AverageLuminance).
		Float64("luminance_stddev", stats.LuminanceStdDev).
		Msg("Render completed")
}

// runRender renders one pass and writes it as a timestamped PNG, returning the file name
func runRender(cfg *config.Config, logger zerolog.Logger) (string, error) {
	rt, camera, err := newRaytracer(cfg, logger)
	if err != nil {
		return "", err
	}

	outputDir, err := createOutputDir(cfg.OutputDir, cfg.Scene)
	if err != nil {
		return "", err
	}

	sink := display.NewImageSink(cfg.Width, cfg.Height)
	stats := rt.RenderPass(camera, sink)
	logStats(logger, stats)

	if cfg.Caption {
		display.DrawCaption(sink, captionText(rt.Scene().Name(), cfg.Width, cfg.Height, stats))
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := sink.SavePNG(filename); err != nil {
		return "", fmt.Errorf("error saving PNG: %w", err)
	}

	logger.Info().Str("file", filename).Msg("Render saved")
	return filename, nil
}

func runWindow(cfg *config.Config, logger zerolog.Logger) error {
	rt, camera, err := newRaytracer(cfg, logger)
	if err != nil {
		return err
	}

	opts := window.Options{
		Title:     fmt.Sprintf("Sphere Raytracer - %s", rt.Scene().Name()),
		Scale:     1,
		Raytracer: rt,
		Camera:    camera,
		OnRendered: func(sink *display.ImageSink, stats renderer.RenderStats) {
			logStats(logger, stats)
		},
	}
	if cfg.Caption {
		opts.Caption = fmt.Sprintf("%s %dx%d", rt.Scene().Name(), cfg.Width, cfg.Height)
	}

	return window.Run(opts)
}

func listScenes(w io.Writer, asYAML bool) error {
	scenes := scene.ListScenes()
	if asYAML {
		data, err := yaml.Marshal(scenes)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, s := range scenes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.DisplayName, s.Description)
	}
	return tw.Flush()
}
