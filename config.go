package versionstamp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path was given.
const DefaultConfigFile = "versionstamp.yaml"

// Config mirrors the optional YAML configuration file. Command-line flags
// take precedence over anything set here.
type Config struct {
	Input      string     `yaml:"input"`
	Output     string     `yaml:"output"`
	Identifier string     `yaml:"identifier"`
	Metadata   Metadata   `yaml:"metadata"`
	Syso       SysoConfig `yaml:"syso"`
}

// SysoConfig controls the optional native resource outputs.
type SysoConfig struct {
	// Output is the .syso path; empty disables syso generation.
	Output string `yaml:"output"`
	// Arch is the target architecture: 386, amd64, arm or arm64.
	// Defaults to amd64.
	Arch string `yaml:"arch"`
	// JSON, when set, is written in goversioninfo's configuration format
	// for builds that run the goversioninfo CLI themselves.
	JSON string `yaml:"json"`
	// Icon is an optional .ico path compiled into the resource.
	Icon string `yaml:"icon"`
}

// LoadConfig reads and decodes the YAML file at path. With explicit false
// a missing file is not an error and yields a zero Config; with explicit
// true (the operator named the file) it is.
func LoadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
