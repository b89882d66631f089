// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/avltree/shell"
)

const (
	configFileName = ".avltree.yaml"
	configEnvVar   = "AVLTREE_CONFIG"
)

type ShellConfig struct {
	Prompt      string `yaml:"prompt"`
	PrintFormat string `yaml:"print_format"`
	Echo        bool   `yaml:"echo"`
}

type BenchConfig struct {
	Keys          int   `yaml:"keys"`
	Deletes       int   `yaml:"deletes"`
	Lookups       int   `yaml:"lookups"`
	Seed          int64 `yaml:"seed"`
	HistogramBins int   `yaml:"histogram_bins"`
	BloomBits     uint  `yaml:"bloom_bits"`
	BloomHashes   uint  `yaml:"bloom_hashes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Bench BenchConfig `yaml:"bench"`
	Log   LogConfig   `yaml:"log"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		Prompt:      "avl> ",
		PrintFormat: string(shell.FormatTable),
		Echo:        false,
	},
	Bench: BenchConfig{
		Keys:          10000,
		Deletes:       5000,
		Lookups:       10000,
		Seed:          1,
		HistogramBins: 10,
		BloomBits:     1 << 16,
		BloomHashes:   5,
	},
	Log: LogConfig{
		Level:  "info",
		Pretty: true,
	},
}

// LoadConfig reads the config file. A missing or broken file gives the
// defaults; fields left out of the file keep their default values.
func LoadConfig() (*Config, error) {
	config := defaultConfig

	configPath, err := getConfigPath()
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "parse %s", configPath)
	}

	if err := config.Validate(); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "invalid %s", configPath)
	}

	return &config, nil
}

// Validate checks values yaml cannot check on its own
func (c *Config) Validate() error {
	if _, err := shell.ParseFormat(c.Shell.PrintFormat); err != nil {
		return errors.Wrap(err, "shell.print_format")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	b := c.Bench
	if b.Keys < 0 || b.Deletes < 0 || b.Lookups < 0 {
		return errors.New("bench: keys, deletes and lookups must not be negative")
	}
	if b.Deletes > b.Keys {
		return errors.Errorf("bench: deletes (%d) exceeds keys (%d)", b.Deletes, b.Keys)
	}
	if b.BloomBits == 0 || b.BloomHashes == 0 {
		return errors.New("bench: bloom_bits and bloom_hashes must be positive")
	}
	return nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv(configEnvVar); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 AVL Tree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🐚 %sShell:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sprompt%s: %q\n", Green, Reset, config.Shell.Prompt)
	fmt.Fprintf(w, "  • %sprint_format%s: %s\n", Green, Reset, config.Shell.PrintFormat)
	fmt.Fprintf(w, "  • %secho%s: %t\n\n", Green, Reset, config.Shell.Echo)

	fmt.Fprintf(w, "⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %skeys%s: %d\n", Green, Reset, config.Bench.Keys)
	fmt.Fprintf(w, "  • %sdeletes%s: %d\n", Green, Reset, config.Bench.Deletes)
	fmt.Fprintf(w, "  • %slookups%s: %d\n", Green, Reset, config.Bench.Lookups)
	fmt.Fprintf(w, "  • %sseed%s: %d\n", Green, Reset, config.Bench.Seed)
	fmt.Fprintf(w, "  • %shistogram_bins%s: %d\n", Green, Reset, config.Bench.HistogramBins)
	fmt.Fprintf(w, "  • %sbloom_bits%s: %d\n", Green, Reset, config.Bench.BloomBits)
	fmt.Fprintf(w, "  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Bench.BloomHashes)

	fmt.Fprintf(w, "📜 %sLogging:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %slevel%s: %s\n", Green, Reset, config.Log.Level)
	fmt.Fprintf(w, "  • %spretty%s: %t\n\n", Green, Reset, config.Log.Pretty)

	fmt.Fprintf(w, "💡 Set %s to use a different file.\n", configEnvVar)
	return nil
}
