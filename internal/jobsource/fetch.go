package jobsource

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-analyzer/internal/htmltext"
)

const defaultUserAgent = "spigell/cv-analyzer (+https://github.com/spigell/cv-analyzer)"

// Fetcher downloads job postings over HTTP and strips them to text.
type Fetcher struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
	logger    *zap.Logger
}

func NewFetcher(timeout time.Duration, sizeCap int64, userAgent string, logger *zap.Logger) *Fetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Fetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		sizeCap:   sizeCap,
		userAgent: userAgent,
		logger:    logger,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (htmltext.Page, error) {
	start := time.Now()

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return htmltext.Page{}, fmt.Errorf("invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return htmltext.Page{}, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,text/plain;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return htmltext.Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return htmltext.Page{}, fmt.Errorf("http status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return htmltext.Page{}, err
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(io.LimitReader(body, f.sizeCap+1))
	if err != nil {
		return htmltext.Page{}, err
	}
	if int64(len(data)) > f.sizeCap {
		return htmltext.Page{}, ErrTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	var page htmltext.Page
	switch {
	case mediaType == "text/plain":
		page = htmltext.Page{Text: htmltext.Clean(string(data))}
	case mediaType == "", strings.Contains(mediaType, "text/html"), strings.Contains(mediaType, "application/xhtml+xml"):
		// Some servers omit the content type; treat the body as HTML.
		page, err = htmltext.Extract(strings.NewReader(string(data)), contentType)
		if err != nil {
			return htmltext.Page{}, err
		}
	default:
		return htmltext.Page{}, fmt.Errorf("%w: %s", ErrNotHTML, mediaType)
	}

	f.logger.Debug("fetched job posting",
		zap.String("url", resp.Request.URL.String()),
		zap.String("title", page.Title),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return page, nil
}
