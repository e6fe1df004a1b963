// Package assets verifies that the display images referenced by the inventory
// are served by the asset host.
package assets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"

	"trailers/inventory/internal/config"
)

const (
	ModeProbe = "probe" // HEAD every image
	ModeIndex = "index" // read one directory listing
)

// Report is the outcome of a check
type Report struct {
	Checked int      `json:"checked"`
	Missing []string `json:"missing,omitempty"`
}

// OK reports whether every image was found
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

type Checker interface {
	Check(ctx context.Context, images []string) (*Report, error)
	Close() error
}

type httpChecker struct {
	rl         ratelimit.Limiter
	config     config.AssetsConfig
	httpClient *resty.Client
}

func NewChecker(cfg config.AssetsConfig) (Checker, error) {
	switch cfg.Mode {
	case ModeProbe, ModeIndex:
	default:
		return nil, fmt.Errorf("unknown assets mode %q", cfg.Mode)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("invalid assets base url %q: want http(s)://host/path", cfg.BaseURL)
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("User-Agent", "inventory-asset-check")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &httpChecker{
		rl:         rl,
		config:     cfg,
		httpClient: client,
	}, nil
}

func (c *httpChecker) Check(ctx context.Context, images []string) (*Report, error) {
	distinct := dedupe(images)

	var (
		missing []string
		err     error
	)
	switch c.config.Mode {
	case ModeIndex:
		missing, err = c.checkIndex(ctx, distinct)
	default:
		missing, err = c.probeAll(ctx, distinct)
	}
	if err != nil {
		return nil, err
	}

	slices.Sort(missing)
	log.Debugf("Checked %d images, %d missing", len(distinct), len(missing))

	return &Report{Checked: len(distinct), Missing: missing}, nil
}

func (c *httpChecker) probeAll(ctx context.Context, images []string) ([]string, error) {
	var (
		mu      sync.Mutex
		missing []string
	)

	g, ctx := errgroup.WithContext(ctx)
	if c.config.MaxWorkers > 0 {
		g.SetLimit(c.config.MaxWorkers)
	}

	for _, image := range images {
		g.Go(func() error {
			found, err := c.probe(ctx, image)
			if err != nil {
				return err
			}
			if !found {
				log.Warnf("Image %s not found", image)
				mu.Lock()
				missing = append(missing, image)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return missing, nil
}

func (c *httpChecker) probe(ctx context.Context, image string) (bool, error) {
	c.rl.Take()
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("request cancelled: %w", err)
	}

	target := c.imageURL(image)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Head(target)
	if err != nil {
		if ctx.Err() != nil {
			return false, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return false, fmt.Errorf("failed to probe %s: %w", target, err)
	}

	switch resp.StatusCode() {
	case http.StatusNotFound, http.StatusGone:
		return false, nil
	}
	if resp.IsError() {
		return false, fmt.Errorf("HTTP error for %s: %s", target, resp.Status())
	}

	log.Debugf("Image %s found", image)
	return true, nil
}

func (c *httpChecker) checkIndex(ctx context.Context, images []string) ([]string, error) {
	c.rl.Take()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("request cancelled: %w", err)
	}

	target := c.indexURL()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset index %s: %w", target, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error for asset index %s: %s", target, resp.Status())
	}

	listed, err := parseIndex(resp.String())
	if err != nil {
		return nil, err
	}
	log.Debugf("Asset index lists %d files", len(listed))

	var missing []string
	for _, image := range images {
		if _, ok := listed[image]; !ok {
			log.Warnf("Image %s not listed in asset index", image)
			missing = append(missing, image)
		}
	}
	return missing, nil
}

// Close releases the underlying HTTP client
func (c *httpChecker) Close() error {
	return c.httpClient.Close()
}

// parseIndex collects the file names linked from a directory listing page
func parseIndex(html string) (map[string]struct{}, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset index: %w", err)
	}

	listed := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if cut := strings.IndexAny(href, "?#"); cut >= 0 {
			href = href[:cut]
		}
		if href == "" || strings.HasSuffix(href, "/") {
			return // Parent or sub directory
		}
		name := path.Base(href)
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		listed[name] = struct{}{}
	})

	return listed, nil
}

func (c *httpChecker) imageURL(image string) string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + "/" + url.PathEscape(image)
}

func (c *httpChecker) indexURL() string {
	base := strings.TrimSuffix(c.config.BaseURL, "/")
	if c.config.IndexPath == "" {
		return base + "/"
	}
	return base + "/" + strings.TrimPrefix(c.config.IndexPath, "/")
}

func dedupe(images []string) []string {
	seen := make(map[string]struct{}, len(images))
	out := make([]string, 0, len(images))
	for _, image := range images {
		if image == "" {
			continue
		}
		if _, ok := seen[image]; ok {
			continue
		}
		seen[image] = struct{}{}
		out = append(out, image)
	}
	return out
}
