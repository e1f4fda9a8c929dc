package handlers

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	nethtml "golang.org/x/net/html"
)

var (
	linkPolicyOnce sync.Once
	linkPolicy     *bluemonday.Policy
)

// safeMapURL returns raw (as normalized by the link policy) when it is an absolute
// http or https URL, and "" otherwise. The result ends up in an <a href>.
func safeMapURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	cleaned := mapLinkSanitizer().Sanitize(`<a href="` + html.EscapeString(trimmed) + `">map</a>`)

	node, err := nethtml.Parse(strings.NewReader(cleaned))
	if err != nil {
		return ""
	}
	return findHref(node)
}

func mapLinkSanitizer() *bluemonday.Policy {
	linkPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireParseableURLs(true)
		policy.AllowURLSchemes("http", "https")
		linkPolicy = policy
	})
	return linkPolicy
}

func findHref(n *nethtml.Node) string {
	if n.Type == nethtml.ElementNode && n.Data == "a" {
		for _, a := range n.Attr {
			if a.Key == "href" {
				return a.Val
			}
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href := findHref(c); href != "" {
			return href
		}
	}
	return ""
}
