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

package core

import "time"

// Config for the placement and transform engine
type Config struct {
	MinBlipWidth      float64       `json:"minBlipWidth" yaml:"minBlipWidth"`           // smallest width a blip shrinks to
	MaxAttempts       int           `json:"maxAttempts" yaml:"maxAttempts"`             // re-samples per width before shrinking
	BlipWidth         float64       `json:"blipWidth" yaml:"blipWidth"`                 // initial width of a blip
	LabelScale        float64       `json:"labelScale" yaml:"labelScale"`               // scale of blip labels in a focused quadrant
	FocusScale        float64       `json:"focusScale" yaml:"focusScale"`               // scale of the focused quadrant
	AnimationDuration time.Duration `json:"animationDuration" yaml:"animationDuration"` // duration of a transition
}

// package-local configuration data (with default values)
var cfg = &Config{
	MinBlipWidth:      12,
	MaxAttempts:       200,
	BlipWidth:         22,
	LabelScale:        0.75,
	FocusScale:        1,
	AnimationDuration: time.Second,
}

// SetConfiguration before use
func SetConfiguration(c *Config) {
	if c.MinBlipWidth > 0 {
		cfg.MinBlipWidth = c.MinBlipWidth
	}
	if c.MaxAttempts > 0 {
		cfg.MaxAttempts = c.MaxAttempts
	}
	if c.BlipWidth > 0 {
		cfg.BlipWidth = c.BlipWidth
	}
	if c.LabelScale > 0 {
		cfg.LabelScale = c.LabelScale
	}
	if c.FocusScale > 0 {
		cfg.FocusScale = c.FocusScale
	}
	if c.AnimationDuration > 0 {
		cfg.AnimationDuration = c.AnimationDuration
	}
}

// Configuration returns a copy of the active settings.
func Configuration() Config {
	return *cfg
}
