package corpus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"canonqa/internal/model"
)

func corpusBody() string {
	var sb strings.Builder
	for sb.Len() < minCorpusBytes {
		sb.WriteString("Genesis 1:1 In the beginning God created the heaven and the earth.\n")
	}
	return sb.String()
}

func testHTTPConfig(mirrors ...string) model.HTTPConfig {
	return model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "canonqa-test",
		MaxBodyBytes: 1 << 20,
		Mirrors:      mirrors,
	}
}

func TestDownloader_FirstSuccessWins(t *testing.T) {
	body := corpusBody()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))
	defer good.Close()

	d := NewDownloader(testHTTPConfig(bad.URL+"/corpus.txt", good.URL+"/corpus.txt"))
	text, mirror, err := d.Download(context.Background())
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if mirror != good.URL+"/corpus.txt" {
		t.Errorf("Wrong mirror reported: %q", mirror)
	}
	if len(text) < minCorpusBytes {
		t.Errorf("Corpus shorter than the minimum: %d bytes", len(text))
	}
}

func TestDownloader_RejectsTruncatedCorpus(t *testing.T) {
	tiny := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("error page pretending to be a corpus"))
	}))
	defer tiny.Close()

	d := NewDownloader(testHTTPConfig(tiny.URL + "/corpus.txt"))
	if _, _, err := d.Download(context.Background()); err == nil {
		t.Error("Expected an error for a truncated corpus")
	}
}

func TestDownloader_HonorsRobots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /corpus.txt\n"))
			return
		}
		t.Errorf("Disallowed path fetched: %s", r.URL.Path)
	}))
	defer srv.Close()

	d := NewDownloader(testHTTPConfig(srv.URL + "/corpus.txt"))
	if _, _, err := d.Download(context.Background()); err == nil {
		t.Error("Expected a robots.txt refusal")
	}
}

func TestDownloader_NoMirrors(t *testing.T) {
	d := NewDownloader(testHTTPConfig())
	if _, _, err := d.Download(context.Background()); err == nil {
		t.Error("Expected an error with no mirrors configured")
	}
}

func TestDownloader_ExtractsHTML(t *testing.T) {
	page := "<html><head><style>body{}</style></head><body><p>" +
		strings.ReplaceAll(corpusBody(), "\n", "</p><p>") +
		"</p><script>alert(1)</script></body></html>"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	d := NewDownloader(testHTTPConfig(srv.URL + "/bible.html"))
	text, _, err := d.Download(context.Background())
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if strings.Contains(text, "alert(1)") || strings.Contains(text, "body{}") {
		t.Error("Script or style content leaked into the extracted text")
	}
	if !strings.Contains(text, "In the beginning God created") {
		t.Error("Visible text missing from the extraction")
	}
}

func TestExtractText(t *testing.T) {
	text, err := ExtractText("<html><body><p>Genesis 1:1 In the beginning.</p><script>x()</script></body></html>")
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if !strings.Contains(text, "Genesis 1:1 In the beginning.") {
		t.Errorf("Missing visible text: %q", text)
	}
	if strings.Contains(text, "x()") {
		t.Errorf("Script content leaked: %q", text)
	}
}
