//----------------------------------------------------------------------
// This file is part of techradar-plot.
// Copyright (C) 2022 Bernd Fix >Y<
//
// techradar-plot is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// techradar-plot is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package plot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"techradar/core"

	"gopkg.in/yaml.v3"
)

// PlotCfg holds the output options
type PlotCfg struct {
	Size       float64 `json:"size" yaml:"size"`             // plot size (square)
	Mode       string  `json:"mode" yaml:"mode"`             // "svg" or "png"
	File       string  `json:"file" yaml:"file"`             // output file
	Scale      float64 `json:"scale" yaml:"scale"`           // pixels per plot unit (png)
	Background string  `json:"background" yaml:"background"` // background color
	Listing    bool    `json:"listing" yaml:"listing"`       // print blip list
}

// LegendCfg holds the texts for the legend
type LegendCfg struct {
	CircleKey   string `json:"circleKey" yaml:"circleKey"`
	TriangleKey string `json:"triangleKey" yaml:"triangleKey"`
}

// UICfg holds the delays (in milliseconds) of deferred UI actions
type UICfg struct {
	ShortDelay int     `json:"shortDelay" yaml:"shortDelay"` // scroll delay in a selected quadrant
	Settle     int     `json:"settle" yaml:"settle"`         // added to the animation duration
	Dimmed     float64 `json:"dimmed" yaml:"dimmed"`         // opacity of dimmed elements
}

// LogCfg for the application logger
type LogCfg struct {
	Level string `json:"level" yaml:"level"`
	File  string `json:"file" yaml:"file"`
}

// QuadrantDef is a quadrant with its drawing color
type QuadrantDef struct {
	core.Quadrant `yaml:",inline"`
	Color         string `json:"color" yaml:"color"`
}

// Config for a radar plot
type Config struct {
	Core      *core.Config   `json:"core" yaml:"core"`
	Plot      *PlotCfg       `json:"plot" yaml:"plot"`
	Legend    *LegendCfg     `json:"legend" yaml:"legend"`
	UI        *UICfg         `json:"ui" yaml:"ui"`
	Log       *LogCfg        `json:"log" yaml:"log"`
	Rings     []*core.Ring   `json:"rings" yaml:"rings"`
	Quadrants []*QuadrantDef `json:"quadrants" yaml:"quadrants"`
}

// Cfg is the global configuration
var Cfg = defaultConfig()

// defaultConfig returns the built-in settings
func defaultConfig() *Config {
	return &Config{
		Core: &core.Config{},
		Plot: &PlotCfg{
			Size:       600,
			Mode:       "svg",
			File:       "radar.svg",
			Scale:      1,
			Background: "#ffffff",
		},
		Legend: &LegendCfg{
			CircleKey:   "No change",
			TriangleKey: "New or moved",
		},
		UI: &UICfg{
			ShortDelay: 300,
			Settle:     100,
			Dimmed:     0.3,
		},
		Log: &LogCfg{
			Level: "info",
		},
	}
}

//----------------------------------------------------------------------

// ReadConfig to deserialize a configuration from a JSON or YAML file
func ReadConfig(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, Cfg)
	default:
		err = json.Unmarshal(data, Cfg)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfig, fn, err)
	}
	Cfg.fill()
	core.SetConfiguration(Cfg.Core)
	return nil
}

// fill replaces empty sections with their defaults
func (c *Config) fill() {
	def := defaultConfig()
	if c.Core == nil {
		c.Core = def.Core
	}
	if c.Plot == nil {
		c.Plot = def.Plot
	}
	if c.Legend == nil {
		c.Legend = def.Legend
	}
	if c.UI == nil {
		c.UI = def.UI
	}
	if c.Log == nil {
		c.Log = def.Log
	}
}

// Radar builds the radar definition from the configuration.
func (c *Config) Radar() (*core.Radar, error) {
	quads := make([]*core.Quadrant, len(c.Quadrants))
	for i, qd := range c.Quadrants {
		q := qd.Quadrant
		quads[i] = &q
	}
	return core.NewRadar(c.Plot.Size, c.Rings, quads)
}

// Palette returns the drawing colors of the configured quadrants.
func (c *Config) Palette() (Palette, error) {
	pal := make(Palette)
	for _, qd := range c.Quadrants {
		if len(qd.Color) == 0 {
			continue
		}
		clr, err := ParseColor(qd.Color)
		if err != nil {
			return nil, fmt.Errorf("quadrant '%s': %w", qd.Order, err)
		}
		pal[qd.Order] = clr
	}
	return pal, nil
}
