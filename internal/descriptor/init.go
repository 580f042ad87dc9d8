package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init creates a new descriptor file with example content.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("descriptor file already exists: %s (use --force to overwrite)", path)
	}

	example := Descriptor{
		SiteDirectory:      "./site",
		TemplatesDirectory: "./templates",
		BaseURL:            "https://example.com",
		Index: IndexConfig{
			IndexTemplate: "index.html.tmpl",
		},
		Copy: CopyConfig{
			Files: []CopyPair{
				{Source: "assets/style.css", Destination: "css/style.css"},
			},
		},
		Blog: BlogConfig{
			PostTemplate:          "post.html.tmpl",
			PostsContentDirectory: "./posts",
			Posts: []Post{
				{ID: "first-post", Directory: "first-post", Artefacts: []string{"diagram.png"}},
				{URL: "https://elsewhere.example.com/guest-post"},
			},
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor file: %w", err)
	}

	return nil
}
