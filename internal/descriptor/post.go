package descriptor

// Post is one blog.posts entry. The descriptor distinguishes two
// kinds: an external post carries a url and is listed on the index
// only; a local post carries an id and a content directory and is
// rendered to its own page. An entry with a url is external even when
// it also carries an id.
type Post struct {
	URL       string   `yaml:"url,omitempty"`
	ID        string   `yaml:"id,omitempty"`
	Directory string   `yaml:"directory,omitempty"`
	Artefacts []string `yaml:"artefacts,omitempty"`
}

// External reports whether the entry is an external post.
func (p Post) External() bool {
	return p.URL != ""
}
