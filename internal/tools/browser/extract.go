package browser

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

var skips = []string{
	"script", "style", "noscript", "svg", "iframe", "canvas", "video", "audio",
	"nav", "header", "footer", "aside", "form", "button", "input", "select",
	"textarea", "label", "link", "meta",
}

var blocks = []string{
	"div", "section", "article", "main", "p", "ul", "ol", "li", "blockquote",
	"pre", "table", "tr",
}

// extract reduces rendered HTML to markdown text, skipping chrome and
// non-content elements.
func extract(raw, title, url string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("html.Parse: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "---\ntitle: %s\nurl: %s\n---\n\n", title, url)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				sb.WriteString(text + " ")
			}
			return

		case html.ElementNode:
			tag := strings.ToLower(n.Data)
			if slices.Contains(skips, tag) {
				return
			}

			switch tag {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				level := int(tag[1] - '0')
				sb.WriteString("\n" + strings.Repeat("#", level) + " ")
				walkChildren(n, walk)
				sb.WriteString("\n")
				return
			case "br":
				sb.WriteString("\n")
				return
			}

			if slices.Contains(blocks, tag) {
				walkChildren(n, walk)
				sb.WriteString("\n")
				return
			}
		}
		walkChildren(n, walk)
	}
	walk(doc)

	return collapseBlankLines(sb.String()), nil
}

func walkChildren(n *html.Node, walk func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
}

func collapseBlankLines(s string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " ")
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
