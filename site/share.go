package site

import (
	"fmt"
	"net/url"
	"strings"
)

// twitterIntent is the endpoint that opens a prefilled tweet.
const twitterIntent = "https://twitter.com/intent/tweet"

// AbsoluteURL joins the configured host with the path of the current page.
func AbsoluteURL(host, pagePath string) string {
	host = strings.TrimSuffix(host, "/")
	if pagePath != "" && !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}
	return host + pagePath
}

// IsRoot reports whether pagePath is the site root.
func IsRoot(pagePath string) bool {
	return pagePath == "/"
}

// ShareStatus is the text posted by a share link.
func ShareStatus(handle, title, absoluteURL string) string {
	return fmt.Sprintf("Read '%s' @%s %s", title, handle, absoluteURL)
}

// TwitterShareLink returns an intent URL that shares title and absoluteURL,
// mentioning handle. Spaces are encoded as %20 so the link carries no "+",
// which html/template would otherwise write as an entity in attributes.
func TwitterShareLink(handle, title, absoluteURL string) string {
	q := make(url.Values, 1)
	q.Set("text", ShareStatus(handle, title, absoluteURL))
	return twitterIntent + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
