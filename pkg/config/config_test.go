package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// isolate keeps Load from picking up a config file in the developer's home directory
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	config, err := Load("", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("Expected defaults %+v, got %+v", *DefaultConfig(), *config)
	}
	if config.Width != 700 || config.Height != 700 || config.MaxDepth != 2 {
		t.Errorf("Unexpected reference values: %+v", *config)
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeFile(t, "raytracer.yaml", `
scene: mirror
width: 320
height: 200
max_depth: 4
shadow_mode: abort
log_pretty: false
`)

	config, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.Scene != "mirror" || config.Width != 320 || config.Height != 200 {
		t.Errorf("File values not applied: %+v", *config)
	}
	if config.MaxDepth != 4 || config.ShadowMode != "abort" || config.LogPretty {
		t.Errorf("File values not applied: %+v", *config)
	}
	// Keys missing from the file keep their defaults
	if config.ViewportWidth != 1 || config.OutputDir != "output" {
		t.Errorf("Expected defaults for unset keys, got %+v", *config)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("Expected error for a missing explicit config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "raytracer.yaml", "max_depth: 4\nscene: mirror\n")
	t.Setenv("RAYTRACER_MAX_DEPTH", "7")
	t.Setenv("RAYTRACER_SHADOW_MODE", "abort")

	config, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.MaxDepth != 7 {
		t.Errorf("Expected env max_depth 7, got %d", config.MaxDepth)
	}
	if config.ShadowMode != "abort" {
		t.Errorf("Expected env shadow mode abort, got %q", config.ShadowMode)
	}
	if config.Scene != "mirror" {
		t.Errorf("Expected file scene mirror, got %q", config.Scene)
	}
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("RAYTRACER_SCENE", "ambient")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("scene", "default", "")
	flags.Int("width", 700, "")
	flags.Int("max-depth", 2, "")
	if err := flags.Parse([]string{"--scene", "mirror", "--max-depth", "0"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	config, err := Load("", flags)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.Scene != "mirror" {
		t.Errorf("Expected flag scene mirror, got %q", config.Scene)
	}
	if config.MaxDepth != 0 {
		t.Errorf("Expected flag max depth 0, got %d", config.MaxDepth)
	}
	if config.Width != 700 {
		t.Errorf("Unchanged flag should leave the default width, got %d", config.Width)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero width", "width: 0\n"},
		{"negative depth", "max_depth: -1\n"},
		{"bad shadow mode", "shadow_mode: sometimes\n"},
		{"bad log level", "log_level: loud\n"},
		{"zero viewport", "viewport_height: 0\n"},
		{"empty scene", "scene: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeFile(t, "raytracer.yaml", tt.content)
			_, err := Load(path, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "raytracer.yaml", "width: [1, 2\n")
	_, err := Load(path, nil)
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected a read error, got %v", err)
	}
}

func TestConfig_TraceAndCameraConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxDepth = 5
	config.ShadowMode = "abort"
	config.Width = 640
	config.Height = 480
	config.ViewportWidth = 4.0 / 3.0

	trace := config.TraceConfig()
	if trace.MaxDepth != 5 || trace.ShadowMode != renderer.ShadowAbortLights {
		t.Errorf("Unexpected trace config %+v", trace)
	}
	if trace.BackgroundColor != renderer.DefaultBackgroundColor {
		t.Errorf("Expected default background, got %v", trace.BackgroundColor)
	}

	camera := config.CameraConfig()
	if camera.Width != 640 || camera.Height != 480 || camera.ViewportWidth != 4.0/3.0 || camera.ViewportHeight != 1 {
		t.Errorf("Unexpected camera config %+v", camera)
	}
	if !camera.Position.IsZero() {
		t.Errorf("Camera should sit at the origin, got %v", camera.Position)
	}
}

func TestWriteDefault(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "raytracer.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}
	var written Config
	if err := yaml.Unmarshal(data, &written); err != nil {
		t.Fatalf("Written config is not valid YAML: %v", err)
	}
	if written != *DefaultConfig() {
		t.Errorf("Expected defaults on disk, got %+v", written)
	}

	// Round trip through Load
	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if *loaded != *DefaultConfig() {
		t.Errorf("Expected loaded defaults, got %+v", *loaded)
	}

	if err := WriteDefault(path, false); err == nil {
		t.Error("Expected error when the file already exists")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("Overwrite should succeed: %v", err)
	}
}
