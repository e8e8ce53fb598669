// Package render writes repository listings into an HTML page tree.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/naka-gawa/github-repos/internal/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ContainerID is the id of the list element the renderer fills by default.
const ContainerID = "repo-list"

// ErrContainerNotFound is returned when the page has no element to render into.
var ErrContainerNotFound = errors.New("list container not found")

// DefaultPage is used when the caller does not supply its own page.
const DefaultPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Repositories</title></head>
<body>
<ul id="repo-list"></ul>
</body>
</html>
`

// ItemText returns the visible text of a single list item, e.g. "octocat ⭐ 42".
func ItemText(repo *domain.Repository) string {
	return fmt.Sprintf("%s ⭐ %d", repo.Name, repo.StargazersCount)
}

// RenderRepositoryList replaces every child of container with one <li> per repository,
// in input order. All records are validated before the container is touched, so a
// failed call leaves the container exactly as it was.
func RenderRepositoryList(container *html.Node, repos []*domain.Repository) error {
	if container == nil {
		return ErrContainerNotFound
	}

	items := make([]*html.Node, 0, len(repos))
	for i, repo := range repos {
		if err := repo.Validate(); err != nil {
			return fmt.Errorf("failed to render element %d: %w", i, err)
		}
		li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
		li.AppendChild(&html.Node{Type: html.TextNode, Data: ItemText(repo)})
		items = append(items, li)
	}

	for c := container.FirstChild; c != nil; {
		next := c.NextSibling
		container.RemoveChild(c)
		c = next
	}
	for _, li := range items {
		container.AppendChild(li)
	}
	return nil
}

// RenderByID looks the container up by its id attribute and renders into it.
func RenderByID(doc *html.Node, id string, repos []*domain.Repository) error {
	container := FindElementByID(doc, id)
	if container == nil {
		return fmt.Errorf("%w: no element with id %q", ErrContainerNotFound, id)
	}
	return RenderRepositoryList(container, repos)
}

// FindElementByID returns the first element in document order whose id equals id, or nil.
func FindElementByID(n *html.Node, id string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Namespace == "" && attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// ParsePage parses an HTML document.
func ParsePage(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// WritePage serializes doc back to HTML.
func WritePage(w io.Writer, doc *html.Node) error {
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}
