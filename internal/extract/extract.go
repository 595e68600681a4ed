// Package extract pulls visible text out of fetched HTML, either from the
// regions matching a class selector or from the whole readable page.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is a simplified representation of extracted page content.
type Document struct {
	Title string
	Text  string
}

// ByClass returns the visible text of every element whose class attribute
// contains all whitespace-separated tokens of selector, matching regions
// joined by newlines. A page without matches yields an empty string; callers
// must treat that defensively.
func ByClass(input []byte, selector string) string {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}
	want := strings.Fields(selector)
	if len(want) == 0 {
		return ""
	}

	var regions []string
	var dfs func(*html.Node)
	dfs = func(n *html.Node) {
		if n.Type == html.ElementNode && classMatches(n, want) {
			if text := innerText(n); text != "" {
				regions = append(regions, text)
			}
			// Matched regions are not descended into again; nested matches
			// would duplicate their text.
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(node)
	return strings.Join(regions, "\n")
}

// Page extracts readable whole-page text, preferring <main> or <article> and
// falling back to <body>, skipping script/style/nav boilerplate. Used when a
// document has no region selector.
func Page(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}
	title := strings.TrimSpace(findTitle(node))
	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}
	if content == nil {
		return Document{Title: title}
	}
	return Document{Title: title, Text: innerText(content)}
}

func classMatches(n *html.Node, want []string) bool {
	var classAttr string
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, "class") {
			classAttr = attr.Val
			break
		}
	}
	if classAttr == "" {
		return false
	}
	have := make(map[string]struct{})
	for _, c := range strings.Fields(classAttr) {
		have[c] = struct{}{}
	}
	for _, w := range want {
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}

// innerText collects the node's text content, one line per text node, with
// blank lines squeezed out. Mirrors a line-separated get-text walk so verse
// and paragraph breaks survive.
func innerText(n *html.Node) string {
	var lines []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			switch strings.ToLower(cur.Data) {
			case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
				return
			}
		}
		if cur.Type == html.TextNode {
			if t := collapseSpaces(strings.TrimSpace(cur.Data)); t != "" {
				lines = append(lines, t)
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(lines, "\n")
}

func findTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return res
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
