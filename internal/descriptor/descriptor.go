// Package descriptor loads and validates the YAML document driving one
// generation run.
package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Descriptor is the root configuration for one generation run. It is
// constructed once by Load and read-only afterwards.
type Descriptor struct {
	SiteDirectory      string      `yaml:"site_directory"`
	TemplatesDirectory string      `yaml:"templates_directory"`
	BaseURL            string      `yaml:"base_url"`
	Index              IndexConfig `yaml:"index"`
	Copy               CopyConfig  `yaml:"copy"`
	Blog               BlogConfig  `yaml:"blog"`
}

// IndexConfig configures the index page generation.
type IndexConfig struct {
	IndexTemplate string `yaml:"index_template"`
}

// CopyConfig lists the files copied verbatim into the site directory.
type CopyConfig struct {
	Files []CopyPair `yaml:"files"`
}

// CopyPair is one copy.files entry: a 2-element sequence of source
// path and destination path relative to the site directory.
type CopyPair struct {
	Source      string
	Destination string
}

// UnmarshalYAML decodes the [source, destination] sequence form.
func (p *CopyPair) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("copy.files entry must be a [source, destination] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("copy.files entry must have exactly 2 elements, got %d", len(pair))
	}
	p.Source = pair[0]
	p.Destination = pair[1]
	return nil
}

// MarshalYAML emits the pair back in its sequence form.
func (p CopyPair) MarshalYAML() (any, error) {
	return []string{p.Source, p.Destination}, nil
}

// BlogConfig configures post rendering.
type BlogConfig struct {
	PostTemplate          string `yaml:"post_template"`
	PostsContentDirectory string `yaml:"posts_content_directory"`
	Posts                 []Post `yaml:"posts"`
}

// Load reads the descriptor from path. Environment variables in the
// file are expanded before decoding; a .env file next to the working
// directory is honored. The returned descriptor is fully validated.
func Load(path string) (*Descriptor, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	var d Descriptor
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &d); err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor %s: %w", path, err)
	}
	return &d, nil
}
