package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexpaint/internal/camera"
	"github.com/gravitas-games/hexpaint/internal/hex"
	"github.com/gravitas-games/hexpaint/internal/terrain"
)

// Config holds all server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Grid   GridConfig   `yaml:"grid"`
	Camera CameraConfig `yaml:"camera"`
	Paint  PaintConfig  `yaml:"paint"`
	Host   HostConfig   `yaml:"host"`
	JWT    JWTConfig    `yaml:"jwt"`
	Redis  RedisConfig  `yaml:"redis"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TickRate int    `yaml:"tick_rate"` // Hz
}

// GridConfig describes the initial map and the tile artwork it is laid out
// from. Pixel sizes are those of the unscaled tile images.
type GridConfig struct {
	InitialTiles int     `yaml:"initial_tiles"`
	Scale        float64 `yaml:"scale"`
	StepWidth    float64 `yaml:"step_width"`
	StepHeight   float64 `yaml:"step_height"`
	ImageWidth   float64 `yaml:"image_width"`
	ImageHeight  float64 `yaml:"image_height"`
	Orientation  string  `yaml:"orientation"` // "rotated" or "pointy"
	AssetDir     string  `yaml:"asset_dir"`
}

// CameraConfig holds zoom and pan settings
type CameraConfig struct {
	MinZoom        float64 `yaml:"min_zoom"`
	MaxZoom        float64 `yaml:"max_zoom"`
	ZoomBase       float64 `yaml:"zoom_base"`
	WheelScale     float64 `yaml:"wheel_scale"`
	PanSpeed       float64 `yaml:"pan_speed"` // world units per second
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

// PaintConfig holds painting settings
type PaintConfig struct {
	InitialTool     string `yaml:"initial_tool"`
	HighlightRadius int    `yaml:"highlight_radius"`
}

// HostConfig holds settings for connected hosts
type HostConfig struct {
	MaxHosts          int      `yaml:"max_hosts"`
	CommandsPerSecond float64  `yaml:"commands_per_second"`
	CommandBurst      int      `yaml:"command_burst"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
}

// JWTConfig holds JWT authentication settings
type JWTConfig struct {
	Enabled             bool   `yaml:"enabled"`
	Issuer              string `yaml:"issuer"`
	PublicKeyURL        string `yaml:"public_key_url"`
	PublicKeyRefreshHrs int    `yaml:"public_key_refresh_hours"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Address         string `yaml:"address"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	BlacklistPrefix string `yaml:"blacklist_prefix"`
}

// Default returns the configuration used when a file leaves a value unset.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Values the file leaves out keep
// their defaults; values it sets explicitly, zero included, are validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.TickRate == 0 {
		c.Server.TickRate = 60
	}

	if c.Grid.InitialTiles == 0 {
		c.Grid.InitialTiles = 61
	}
	if c.Grid.Scale == 0 {
		c.Grid.Scale = 0.25
	}
	if c.Grid.StepWidth == 0 {
		c.Grid.StepWidth = 457
	}
	if c.Grid.StepHeight == 0 {
		c.Grid.StepHeight = 484
	}
	if c.Grid.ImageWidth == 0 {
		c.Grid.ImageWidth = 466
	}
	if c.Grid.ImageHeight == 0 {
		c.Grid.ImageHeight = 554
	}
	if c.Grid.Orientation == "" {
		c.Grid.Orientation = hex.Rotated.String()
	}
	if c.Grid.AssetDir == "" {
		c.Grid.AssetDir = terrain.DefaultAssetDir
	}

	cam := camera.DefaultOptions()
	if c.Camera.MinZoom == 0 {
		c.Camera.MinZoom = cam.MinZoom
	}
	if c.Camera.MaxZoom == 0 {
		c.Camera.MaxZoom = cam.MaxZoom
	}
	if c.Camera.ZoomBase == 0 {
		c.Camera.ZoomBase = cam.ZoomBase
	}
	if c.Camera.WheelScale == 0 {
		c.Camera.WheelScale = cam.WheelScale
	}
	if c.Camera.PanSpeed == 0 {
		c.Camera.PanSpeed = cam.PanSpeed
	}
	if c.Camera.ViewportWidth == 0 {
		c.Camera.ViewportWidth = 1280
	}
	if c.Camera.ViewportHeight == 0 {
		c.Camera.ViewportHeight = 720
	}

	if c.Paint.InitialTool == "" {
		c.Paint.InitialTool = "erase"
	}
	if c.Paint.HighlightRadius == 0 {
		c.Paint.HighlightRadius = 2
	}

	if c.Host.MaxHosts == 0 {
		c.Host.MaxHosts = 16
	}
	if c.Host.CommandsPerSecond == 0 {
		c.Host.CommandsPerSecond = 120
	}
	if c.Host.CommandBurst == 0 {
		c.Host.CommandBurst = 240
	}
	if len(c.Host.AllowedOrigins) == 0 {
		c.Host.AllowedOrigins = []string{"*"}
	}

	if c.JWT.PublicKeyRefreshHrs == 0 {
		c.JWT.PublicKeyRefreshHrs = 24
	}
	if c.Redis.BlacklistPrefix == "" {
		c.Redis.BlacklistPrefix = "blacklist:"
	}
}

// Validate reports every setting the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("server.tick_rate must be positive, got %d", c.Server.TickRate))
	}
	if c.Grid.InitialTiles < 0 {
		errs = append(errs, fmt.Errorf("grid.initial_tiles must not be negative, got %d", c.Grid.InitialTiles))
	}
	if c.Grid.Scale <= 0 {
		errs = append(errs, fmt.Errorf("grid.scale must be positive, got %v", c.Grid.Scale))
	}
	if c.Grid.StepWidth <= 0 || c.Grid.StepHeight <= 0 {
		errs = append(errs, errors.New("grid step size must be positive"))
	}
	if c.Grid.Orientation != hex.Rotated.String() && c.Grid.Orientation != hex.Pointy.String() {
		errs = append(errs, fmt.Errorf("grid.orientation must be %q or %q, got %q", hex.Rotated, hex.Pointy, c.Grid.Orientation))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom {
		errs = append(errs, fmt.Errorf("camera zoom limits out of order: min %v, max %v", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	if c.Camera.ZoomBase <= 0 {
		errs = append(errs, fmt.Errorf("camera.zoom_base must be positive, got %v", c.Camera.ZoomBase))
	}
	if c.Paint.HighlightRadius < 0 {
		errs = append(errs, fmt.Errorf("paint.highlight_radius must not be negative, got %d", c.Paint.HighlightRadius))
	}
	if c.Host.MaxHosts < 0 {
		errs = append(errs, fmt.Errorf("host.max_hosts must not be negative, got %d", c.Host.MaxHosts))
	}
	if c.JWT.Enabled && c.JWT.PublicKeyURL == "" {
		errs = append(errs, errors.New("jwt.public_key_url is required when jwt is enabled"))
	}
	return errors.Join(errs...)
}

// Geometry derives the lattice layout and the drawn tile size from the
// artwork dimensions.
func (c *Config) Geometry() (hex.Layout, hex.Point) {
	s := c.Grid.Scale
	layout := hex.Layout{
		Step: hex.Point{
			X: c.Grid.StepWidth * s / math.Sqrt(3),
			Y: c.Grid.StepHeight * s / 2,
		},
		Orientation: hex.ParseOrientation(c.Grid.Orientation),
	}
	image := hex.Point{
		X: c.Grid.ImageWidth * s * 2 / math.Sqrt(3),
		Y: c.Grid.ImageHeight * s,
	}
	return layout, image
}

// CameraOptions converts the camera section.
func (c *Config) CameraOptions() camera.Options {
	return camera.Options{
		MinZoom:    c.Camera.MinZoom,
		MaxZoom:    c.Camera.MaxZoom,
		ZoomBase:   c.Camera.ZoomBase,
		WheelScale: c.Camera.WheelScale,
		PanSpeed:   c.Camera.PanSpeed,
	}
}

// Viewport returns the initial view size.
func (c *Config) Viewport() hex.Point {
	return hex.Point{X: c.Camera.ViewportWidth, Y: c.Camera.ViewportHeight}
}

// InitialTool resolves the configured starting tool, falling back to Blank.
func (c *Config) InitialTool() terrain.Tag {
	return terrain.Resolve(c.Paint.InitialTool)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
