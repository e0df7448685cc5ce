package widget

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseFragment(s string) ([]*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(s), context)
}

// stripScripts removes every <script> element from an HTML fragment.
func stripScripts(s string) string {
	if !strings.Contains(strings.ToLower(s), "<script") {
		return s
	}
	nodes, err := parseFragment(s)
	if err != nil {
		return html.EscapeString(s)
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		if isScript(n) {
			continue
		}
		removeScripts(n)
		if err := html.Render(&buf, n); err != nil {
			return html.EscapeString(s)
		}
	}
	return buf.String()
}

func removeScripts(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if isScript(c) {
			n.RemoveChild(c)
		} else {
			removeScripts(c)
		}
		c = next
	}
}

func isScript(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Script
}

// textContent returns the concatenated text of an HTML fragment.
func textContent(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	nodes, err := parseFragment(s)
	if err != nil {
		return s
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}

// PlainText returns the visible text of a row or choice that may carry
// markup.
func PlainText(s string) string {
	return textContent(s)
}
