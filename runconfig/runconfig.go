/*
 * Mida - run configuration
 *
 * Copyright 2025, Mida Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package runconfig loads the optional YAML run-configuration file, the
// way the teacher's config/configparser loads a device-configuration file,
// but for the much smaller set of knobs a trace replay run needs.
// Command-line flags always take precedence over values loaded here.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the optional run-configuration file shape.
type Config struct {
	// OPSPercent is an over-provisioning percent. It is parsed from the
	// file, but simrun does not read it: the over-provisioning percent
	// always comes from the required <ops_percent> argument.
	OPSPercent float64 `yaml:"ops_percent"`

	// Verbose enables the every-100,000-tick progress line by default.
	Verbose bool `yaml:"verbose"`

	// Format selects the default report rendering: "text" or "yaml".
	Format string `yaml:"format"`

	// Interactive drops into the console REPL between trace files by
	// default.
	Interactive bool `yaml:"interactive"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{OPSPercent: 0, Verbose: false, Format: "text"}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("runconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("runconfig: parsing %s: %w", path, err)
	}

	if cfg.Format != "text" && cfg.Format != "yaml" {
		return Config{}, fmt.Errorf("runconfig: %s: unknown format %q", path, cfg.Format)
	}

	return cfg, nil
}
