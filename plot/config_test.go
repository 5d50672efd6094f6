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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"techradar/core"
)

// loadConfig resets the global configuration and reads a file
func loadConfig(t *testing.T, fn string) {
	t.Helper()
	Cfg = defaultConfig()
	if err := ReadConfig(fn); err != nil {
		t.Fatal(err)
	}
}

func TestReadConfigYAML(t *testing.T) {
	loadConfig(t, "testdata/radar.yaml")
	if Cfg.Plot.Size != 600 || !Cfg.Plot.Listing {
		t.Errorf("plot section: %+v", Cfg.Plot)
	}
	// defaults survive partial sections
	if Cfg.Plot.Scale != 1 || Cfg.Log.Level != "info" {
		t.Errorf("defaults lost: %+v %+v", Cfg.Plot, Cfg.Log)
	}
	if d := core.Configuration().AnimationDuration; d != 40*time.Millisecond {
		t.Errorf("animation duration %v", d)
	}
	if len(Cfg.Rings) != 4 || len(Cfg.Quadrants) != 4 {
		t.Fatalf("%d rings, %d quadrants", len(Cfg.Rings), len(Cfg.Quadrants))
	}
	q := Cfg.Quadrants[3]
	if q.Order != core.Fourth || q.StartAngle != -180 || q.Color != "#8d2145" {
		t.Errorf("quadrant: %+v", q)
	}
	if b := q.Blips[0]; b.Topic != "backend" || b.Label() != "9. Go. - backend" {
		t.Errorf("blip: %s", b.Label())
	}
	r, err := Cfg.Radar()
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := r.Blip(6); b == nil || !b.IsNew || b.Width != 22 {
		t.Errorf("blip #6: %v", b)
	}
}

func TestReadConfigJSON(t *testing.T) {
	loadConfig(t, "testdata/radar.json")
	if Cfg.Plot.Mode != "png" || Cfg.Plot.Scale != 2 {
		t.Errorf("plot section: %+v", Cfg.Plot)
	}
	if c := core.Configuration(); c.MinBlipWidth != 10 || c.MaxAttempts != 100 {
		t.Errorf("core section: %+v", c)
	}
	r, err := Cfg.Radar()
	if err != nil {
		t.Fatal(err)
	}
	if r.Size != 400 || len(r.Rings) != 2 {
		t.Errorf("radar: size %v, %d rings", r.Size, len(r.Rings))
	}
	pal, err := Cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if c := pal.Base(core.First); c.R != 0x3d || c.G != 0xb5 || c.B != 0xbe {
		t.Errorf("palette: %v", c)
	}
	if pal.Base(core.Second) != ClrGrey {
		t.Error("missing color not defaulted")
	}
}

func TestReadConfigDefects(t *testing.T) {
	Cfg = defaultConfig()
	if err := ReadConfig("testdata/missing.yaml"); err == nil {
		t.Error("missing file accepted")
	}
	fn := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(fn, []byte(`{"plot": {"size": "big"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := ReadConfig(fn); !errors.Is(err, ErrConfig) {
		t.Errorf("broken file: %v", err)
	}
	Cfg = defaultConfig()
	Cfg.Quadrants = []*QuadrantDef{{Color: "green"}}
	if _, err := Cfg.Palette(); !errors.Is(err, ErrColor) {
		t.Errorf("color: %v", err)
	}
}

func TestReadConfigEmptySections(t *testing.T) {
	for _, c := range []struct {
		name, text string
	}{
		{"empty.yaml", "core:\n#  minBlipWidth: 10\nplot:\n  size: 500\nui:\nlog: ~\n"},
		{"empty.json", `{"core": null, "legend": null, "plot": {"size": 500}}`},
	} {
		Cfg = defaultConfig()
		fn := filepath.Join(t.TempDir(), c.name)
		if err := os.WriteFile(fn, []byte(c.text), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := ReadConfig(fn); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if Cfg.Core == nil || Cfg.Legend == nil || Cfg.UI == nil || Cfg.Log == nil {
			t.Fatalf("%s: section missing: %+v", c.name, Cfg)
		}
		if Cfg.Plot.Size != 500 || Cfg.UI.ShortDelay != 300 || Cfg.Log.Level != "info" {
			t.Errorf("%s: defaults not applied: %+v %+v %+v", c.name, Cfg.Plot, Cfg.UI, Cfg.Log)
		}
	}
}

func TestPaletteBands(t *testing.T) {
	clr, err := ParseColor("#3db5be")
	if err != nil {
		t.Fatal(err)
	}
	pal := Palette{core.First: clr}
	prev := -1
	for i := 0; i < 4; i++ {
		c := pal.Band(core.First, i, 4)
		sum := int(c.R) + int(c.G) + int(c.B)
		if sum <= prev {
			t.Errorf("band %d not lighter than band %d", i, i-1)
		}
		prev = sum
	}
}
