package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors end a line of text when rendered.
const blockSelectors = "p, div, section, article, h1, h2, h3, h4, h5, h6, ul, ol, tr, table, blockquote, pre"

// LooksLikeHTML reports whether s appears to contain markup.
func LooksLikeHTML(s string) bool {
	i := strings.Index(s, "<")
	if i < 0 {
		return false
	}
	return strings.Contains(s[i:], ">")
}

// HTMLToText renders an HTML job description as plain text, keeping paragraphs and list
// items on their own lines. Plain-text input is only cleaned.
func HTMLToText(content string) (string, error) {
	if !LooksLikeHTML(content) {
		return CleanText(content), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, iframe").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
		s.AppendHtml("\n")
	})
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return CleanText(doc.Text()), nil
	}
	return CleanText(body.Text()), nil
}
