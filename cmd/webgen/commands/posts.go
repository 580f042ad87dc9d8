package commands

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
)

// PostsCmd implements the 'posts' command: load the descriptor and
// print the post inventory without generating anything.
type PostsCmd struct{}

func (p *PostsCmd) Run(_ *Global, root *CLI) error {
	desc, err := descriptor.Load(root.DescriptorFile)
	if err != nil {
		return fmt.Errorf("load descriptor: %w", err)
	}

	titler := cases.Title(language.English)
	for _, post := range desc.Blog.Posts {
		if post.External() {
			fmt.Printf("external  %s\n", post.URL)
			continue
		}
		title := titler.String(strings.ReplaceAll(post.ID, "-", " "))
		url := desc.BaseURL + "/posts/" + post.ID + "/index.html"
		fmt.Printf("local     %-30s %s\n", title, url)
	}
	return nil
}
