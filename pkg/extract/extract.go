// Package extract turns HTML into the plain prose that gets scored.
package extract

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Result is the extracted article text plus the metadata worth keeping.
type Result struct {
	Title string
	Text  string
}

// FromHTML isolates the main article content with go-readability, then
// walks the distilled blocks with goquery so boilerplate (nav, asides,
// code) stays out of the prose that gets scored.
func FromHTML(rawURL, html string) (*Result, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse distilled content: %w", err)
	}

	var sb strings.Builder
	doc.Find("h1,h2,h3,h4,p,li").Each(func(i int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
			// Headings and list items rarely carry terminal punctuation;
			// add one so sentence segmentation sees a boundary.
			sb.WriteString(".")
		}
		sb.WriteString("\n")
	})

	text := strings.TrimSpace(sb.String())
	if text == "" {
		// Readability found an article but no block-level prose; fall
		// back to its own text rendering.
		text = normalizeText(article.TextContent)
	}

	return &Result{
		Title: normalizeText(article.Title),
		Text:  text,
	}, nil
}

// normalizeText trims each line and collapses the result to single-space
// separation.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
