// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	World    WorldConfig    `yaml:"world"`
	Bananas  BananasConfig  `yaml:"bananas"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// WorldConfig holds terrain settings.
type WorldConfig struct {
	// Heightmap is the elevation image path, relative to the asset dir.
	Heightmap string `yaml:"heightmap"`
	// Resolution samples every n-th heightmap texel.
	Resolution int `yaml:"resolution"`
	// Size is the world-unit extent of one heightmap texel.
	Size float32 `yaml:"size"`
	// HeightMultiplier maps a full-brightness texel to world height.
	HeightMultiplier float32 `yaml:"height_multiplier"`
	// Chunks is the chunk count per terrain axis.
	Chunks int `yaml:"chunks"`
	// GenNormals derives face normals (and dirt recoloring) at build.
	GenNormals bool `yaml:"gen_normals"`
	// WaterTile subdivides the water plane into quads of this size.
	WaterTile float32 `yaml:"water_tile"`
	// EyeOffset is the camera height above the sampled ground.
	EyeOffset float32 `yaml:"eye_offset"`
}

// BananasConfig holds the collectible placement grid settings.
type BananasConfig struct {
	GridX int `yaml:"grid_x"`
	GridY int `yaml:"grid_y"`
	// Spacing is the world distance between neighboring slots.
	Spacing float32 `yaml:"spacing"`
	// CaptureRadius is how close the player must come to collect.
	CaptureRadius float32 `yaml:"capture_radius"`
	// Hover lifts objects above the ground.
	Hover float32 `yaml:"hover"`
	// Workers shards per-frame instance generation; 0 = all CPUs.
	Workers int `yaml:"workers"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS bool `yaml:"show_fps"`
	// MoveSpeed is the walk speed in world units per second.
	MoveSpeed float32 `yaml:"move_speed"`
	// MouseSensitivity divides raw pointer deltas.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// AssetsConfig holds resource locations.
type AssetsConfig struct {
	// Dir is the root directory all asset paths resolve against.
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		World: WorldConfig{
			Heightmap:        "height.png",
			Resolution:       2,
			Size:             1.0,
			HeightMultiplier: 250.0,
			Chunks:           4,
			GenNormals:       true,
			WaterTile:        10.0,
			EyeOffset:        2.0,
		},
		Bananas: BananasConfig{
			GridX:         100,
			GridY:         100,
			Spacing:       10.0,
			CaptureRadius: 5.0,
			Hover:         2.0,
			Workers:       0,
		},
		Game: GameConfig{
			ShowFPS:          false,
			MoveSpeed:        20.0,
			MouseSensitivity: 500.0,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
