package scrape

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxSnippetRunes = 4000

var httpc = &http.Client{Timeout: 10 * time.Second}

// FetchArticleText downloads the article page and returns its visible body
// text with script/nav/chrome stripped, capped at 4000 runes. Used to
// prefill the reviewer's report text.
func FetchArticleText(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty url")
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NewsNexusBot/1.0)")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	doc.Find("script, style, nav, footer, header, form, noscript, svg").Remove()

	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	runes := []rune(text)
	if len(runes) > maxSnippetRunes {
		text = string(runes[:maxSnippetRunes]) + "..."
	}
	return text, nil
}
