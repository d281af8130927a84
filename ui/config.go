package ui

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// RGB is a color as it appears in the config file, e.g. `[24, 26, 27]`.
type RGB [3]uint8

func (rgb RGB) Color() color.RGBA {
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}

// FlagColorOptions are the selectable flag tints, keyed by the names the
// flag_color config key accepts.
var FlagColorOptions = map[string]RGB{
	"red":    {220, 0, 0},
	"orange": {255, 140, 0},
	"yellow": {255, 255, 0},
	"green":  {50, 205, 50},
}

// Config holds every presentation parameter: layout metrics, palette and
// timings. The rules core never sees any of it; the window loop receives it
// at startup and treats it as read-only.
type Config struct {
	FPS int `yaml:"fps"`

	CellSize     int `yaml:"cell_size"`
	MarginLeft   int `yaml:"margin_left"`
	MarginTop    int `yaml:"margin_top"`
	MarginRight  int `yaml:"margin_right"`
	MarginBottom int `yaml:"margin_bottom"`

	Background   RGB `yaml:"color_bg"`
	Grid         RGB `yaml:"color_grid"`
	CellHidden   RGB `yaml:"color_cell_hidden"`
	CellRevealed RGB `yaml:"color_cell_revealed"`
	CellMine     RGB `yaml:"color_cell_mine"`
	Header       RGB `yaml:"color_header"`
	HeaderText   RGB `yaml:"color_header_text"`
	Text         RGB `yaml:"color_text"`
	Highlight    RGB `yaml:"color_highlight"`
	Hint         RGB `yaml:"color_hint"`
	Result       RGB `yaml:"color_result"`

	// NumberColors maps adjacency counts 1..8 to their digit color.
	NumberColors map[int]RGB `yaml:"number_colors"`

	// FlagColor selects the flag tint by name from FlagColorOptions.
	FlagColor string `yaml:"flag_color"`

	HintDurationMS     int `yaml:"hint_duration_ms"`
	DirectorIntervalMS int `yaml:"director_interval_ms"`

	// ResultOverlayAlpha dims the board under the result/pause banner, 0-255.
	ResultOverlayAlpha int `yaml:"result_overlay_alpha"`
}

func DefaultConfig() Config {
	return Config{
		FPS: 60,

		CellSize:     32,
		MarginLeft:   20,
		MarginTop:    60,
		MarginRight:  20,
		MarginBottom: 20,

		Background:   RGB{24, 26, 27},
		Grid:         RGB{60, 64, 67},
		CellHidden:   RGB{40, 44, 52},
		CellRevealed: RGB{225, 228, 232},
		CellMine:     RGB{220, 0, 0},
		Header:       RGB{32, 34, 36},
		HeaderText:   RGB{240, 240, 240},
		Text:         RGB{20, 20, 20},
		Highlight:    RGB{70, 130, 180},
		Hint:         RGB{255, 215, 0},
		Result:       RGB{242, 242, 0},

		NumberColors: map[int]RGB{
			1: {25, 118, 210},
			2: {56, 142, 60},
			3: {211, 47, 47},
			4: {123, 31, 162},
			5: {255, 143, 0},
			6: {0, 151, 167},
			7: {85, 85, 85},
			8: {0, 0, 0},
		},

		FlagColor: "red",

		HintDurationMS:     1000,
		DirectorIntervalMS: 500,

		ResultOverlayAlpha: 120,
	}
}

// LoadConfig reads a YAML presentation config. Absent keys keep their
// defaults, so a config file only needs the values it wants to change.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("parse %s: %w", path, err)
	}

	if _, isValid := FlagColorOptions[config.FlagColor]; !isValid {
		return config, fmt.Errorf("unknown flag_color %q", config.FlagColor)
	}
	if config.FPS < 1 || config.CellSize < 1 || config.DirectorIntervalMS < 1 {
		return config, fmt.Errorf("fps, cell_size and director_interval_ms must be positive")
	}
	return config, nil
}

func (config Config) flagColor() RGB {
	return FlagColorOptions[config.FlagColor]
}

func (config Config) hintDuration() time.Duration {
	return time.Duration(config.HintDurationMS) * time.Millisecond
}

func (config Config) directorInterval() time.Duration {
	return time.Duration(config.DirectorIntervalMS) * time.Millisecond
}
