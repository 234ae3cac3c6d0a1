// Package markdown reads the metadata navbuilder needs from content pages:
// YAML frontmatter and the first level-1 heading. It does not render HTML.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Page holds the metadata of a content page.
type Page struct {
	Frontmatter map[string]any
	Heading     string
}

// Title returns the frontmatter title, falling back to the first heading.
func (p Page) Title() string {
	if t, ok := p.Frontmatter["title"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return p.Heading
}

// ReadPage reads and parses the page at path.
func ReadPage(path string) (Page, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Page{}, err
	}
	page, err := Parse(content)
	if err != nil {
		return Page{}, fmt.Errorf("%s: %w", path, err)
	}
	return page, nil
}

// Parse extracts frontmatter fields and the first level-1 heading.
func Parse(content []byte) (Page, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return Page{}, err
	}
	fields := map[string]any{}
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &fields); err != nil {
			return Page{}, fmt.Errorf("invalid frontmatter: %w", err)
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}
	return Page{Frontmatter: fields, Heading: FirstHeading(body)}, nil
}

// splitFrontmatter separates `---` delimited YAML from the Markdown body.
func splitFrontmatter(content []byte) (frontmatter []byte, body []byte, err error) {
	nl := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}
	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return nil, rest[len(open):], nil
	}
	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Closing delimiter at EOF without a trailing newline.
		if tail := []byte(nl + "---"); bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+len(nl)], nil, nil
		}
		return nil, nil, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], nil
}

// FirstHeading returns the plain text of the first level-1 heading (ATX or setext).
func FirstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var heading string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == 1 {
			var buf bytes.Buffer
			collectText(&buf, h, body)
			heading = strings.TrimSpace(buf.String())
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return heading
}

func collectText(buf *bytes.Buffer, n gmast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		default:
			collectText(buf, c, source)
		}
	}
}
