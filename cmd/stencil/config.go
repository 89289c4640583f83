package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// configFileName is the project file looked up in the working directory when
// --config is not given.
const configFileName = ".stencil.yaml"

// projectConfig mirrors the .stencil.yaml project file. Command-line flags
// override any value set here.
type projectConfig struct {
	Root               string `yaml:"root"`
	Extension          string `yaml:"extension"`
	GeneratedExtension string `yaml:"generated_extension"`
	Processor          string `yaml:"processor"`
	Force              bool   `yaml:"force"`
}

// loadProjectConfig reads the project file at path, or the default one in
// the working directory. A missing default file yields an empty config; a
// missing explicit --config path is an error.
func loadProjectConfig(path string) (*projectConfig, error) {
	explicit := path != ""
	if !explicit {
		path = configFileName
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return &projectConfig{}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg := &projectConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
