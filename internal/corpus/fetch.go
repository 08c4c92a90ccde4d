package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"canonqa/internal/model"
	"canonqa/internal/util"

	"golang.org/x/net/html"
)

// Downloader fetches corpus text from public mirrors. Mirrors are tried in
// order; the first response large enough to be a full corpus wins.
type Downloader struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	userAgent  string
	maxBytes   int64
	mirrors    []string
}

// minCorpusBytes guards against mirrors serving error pages as 200s.
const minCorpusBytes = 10_000

// NewDownloader creates a downloader from HTTP configuration.
func NewDownloader(cfg model.HTTPConfig) *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		mirrors:   cfg.Mirrors,
	}
}

// Download fetches the corpus text, returning the body and the mirror URL
// that served it.
func (d *Downloader) Download(ctx context.Context) (string, string, error) {
	var lastErr error
	for _, mirror := range d.mirrors {
		text, err := d.fetch(ctx, mirror)
		if err != nil {
			lastErr = err
			continue
		}
		if len(text) < minCorpusBytes {
			lastErr = fmt.Errorf("mirror %s returned truncated corpus (%d bytes)", mirror, len(text))
			continue
		}
		return text, mirror, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no mirrors configured")
	}
	return "", "", fmt.Errorf("download corpus: %w", lastErr)
}

func (d *Downloader) fetch(ctx context.Context, rawURL string) (string, error) {
	allowed, err := d.robots.CanFetch(ctx, rawURL)
	if err == nil && !allowed {
		return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "text/plain,text/html;q=0.9,*/*;q=0.8")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		text, err = ExtractText(text)
		if err != nil {
			return "", fmt.Errorf("extract text: %w", err)
		}
	}
	return text, nil
}

// ExtractText pulls the visible text out of an HTML document, skipping
// script and style content. Mirrors that serve the corpus as a web page go
// through here before parsing.
func ExtractText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String(), nil
}
