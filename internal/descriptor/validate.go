package descriptor

import (
	"errors"
	"fmt"
)

// Validate checks the descriptor eagerly so problems surface at load
// time instead of deep inside the generation loop. Duplicate local
// post ids are rejected: two local posts with the same id would write
// to the same output directory.
func (d *Descriptor) Validate() error {
	if d.SiteDirectory == "" {
		return errors.New("site_directory is required")
	}
	if d.TemplatesDirectory == "" {
		return errors.New("templates_directory is required")
	}
	if d.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if d.Index.IndexTemplate == "" {
		return errors.New("index.index_template is required")
	}
	if d.Blog.PostTemplate == "" {
		return errors.New("blog.post_template is required")
	}
	if d.Blog.PostsContentDirectory == "" {
		return errors.New("blog.posts_content_directory is required")
	}

	for i, pair := range d.Copy.Files {
		if pair.Source == "" || pair.Destination == "" {
			return fmt.Errorf("copy.files[%d]: source and destination must be non-empty", i)
		}
	}

	seen := make(map[string]struct{}, len(d.Blog.Posts))
	for i, post := range d.Blog.Posts {
		if post.External() {
			continue
		}
		if post.ID == "" {
			return fmt.Errorf("blog.posts[%d]: id is required for local posts", i)
		}
		if post.Directory == "" {
			return fmt.Errorf("blog.posts[%d]: directory is required for local posts", i)
		}
		if _, dup := seen[post.ID]; dup {
			return fmt.Errorf("duplicate post id %q", post.ID)
		}
		seen[post.ID] = struct{}{}
	}
	return nil
}
