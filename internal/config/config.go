// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Rendering RenderingConfig `yaml:"rendering"`
	Textures  TexturesConfig  `yaml:"textures"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RenderingConfig holds default per-node rendering attributes.
type RenderingConfig struct {
	LinesWidth      float32 `yaml:"lines_width"`
	PointsSize      float32 `yaml:"points_size"`
	BackfaceCulling bool    `yaml:"backface_culling"`
	DrawSurface     bool    `yaml:"draw_surface"`
	DynamicBuffers  bool    `yaml:"dynamic_buffers"` // allocate meshes with dynamic-draw GPU usage
}

// TexturesConfig holds texture resolution settings.
type TexturesConfig struct {
	SearchPaths []string `yaml:"search_paths"` // Directories searched for texture files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Rendering: RenderingConfig{
			LinesWidth:      0,
			PointsSize:      0,
			BackfaceCulling: true,
			DrawSurface:     true,
			DynamicBuffers:  false,
		},
		Textures: TexturesConfig{
			SearchPaths: []string{"./textures"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
