package seo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/lvkit/urls"
)

var (
	ErrStatus  = errors.New("seo: unexpected HTTP status")
	ErrNotHTML = errors.New("seo: response is not HTML")
	ErrURL     = errors.New("seo: invalid URL")
)

// Options configures a Client.
type Options struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration // per request
	Rate       rate.Limit    // requests per second; rate.Inf disables pacing
	Burst      int
	Workers    int   // FetchAll concurrency
	MaxBody    int64 // bytes read per response
	Logger     *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: 15s timeout, 2 req/s with a burst of 4, 4 workers,
// 5 MiB bodies, no logging.
func DefaultOptions() Options {
	return Options{
		HTTPClient: http.DefaultClient,
		UserAgent:  "lvkit-seo/1.0 (+https://github.com/katalvlaran/lvkit)",
		Timeout:    15 * time.Second,
		Rate:       2,
		Burst:      4,
		Workers:    4,
		MaxBody:    5 << 20,
		Logger:     zap.NewNop(),
	}
}

// WithHTTPClient sets the transport. Panics on nil.
func WithHTTPClient(c *http.Client) Option {
	if c == nil {
		panic("seo: nil http client")
	}
	return func(o *Options) { o.HTTPClient = c }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option { return func(o *Options) { o.UserAgent = ua } }

// WithTimeout bounds each request. Panics on d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("seo: timeout must be positive")
	}
	return func(o *Options) { o.Timeout = d }
}

// WithRate paces requests to r per second with the given burst. A rate
// of zero or less means no pacing. Panics on a non-positive burst.
func WithRate(r rate.Limit, burst int) Option {
	if burst <= 0 {
		panic("seo: burst must be positive")
	}
	return func(o *Options) { o.Rate, o.Burst = r, burst }
}

// WithWorkers bounds FetchAll concurrency. Panics on n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("seo: workers must be positive")
	}
	return func(o *Options) { o.Workers = n }
}

// WithMaxBody caps the bytes read per response. Panics on n <= 0.
func WithMaxBody(n int64) Option {
	if n <= 0 {
		panic("seo: max body must be positive")
	}
	return func(o *Options) { o.MaxBody = n }
}

// WithLogger sets the request logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("seo: nil logger")
	}
	return func(o *Options) { o.Logger = l }
}

// Client fetches pages and sitemaps. It is safe for concurrent use.
type Client struct {
	opts    Options
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient builds a Client.
func NewClient(opts ...Option) *Client {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Rate <= 0 {
		o.Rate = rate.Inf
	}
	return &Client{opts: o, limiter: rate.NewLimiter(o.Rate, o.Burst), log: o.Logger}
}

// get issues a paced GET and hands the size-limited body to fn.
func (c *Client) get(ctx context.Context, rawURL, accept string, fn func(*http.Response, io.Reader) error) error {
	if !urls.IsValid(rawURL) || !strings.HasPrefix(strings.ToLower(rawURL), "http") {
		return fmt.Errorf("%w: %q", ErrURL, rawURL)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURL, err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", accept)

	start := time.Now()
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		c.log.Debug("fetch failed", zap.String("url", rawURL), zap.Error(err))
		return fmt.Errorf("seo: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	c.log.Debug("fetched",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: %s", ErrStatus, rawURL, resp.Status)
	}
	return fn(resp, io.LimitReader(resp.Body, c.opts.MaxBody))
}

// Fetch downloads rawURL and parses its metadata. A relative canonical
// link is resolved against the final response URL.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Meta, error) {
	var m Meta
	err := c.get(ctx, rawURL, "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5", func(resp *http.Response, body io.Reader) error {
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			mt, _, _ := mime.ParseMediaType(ct)
			if mt != "text/html" && mt != "application/xhtml+xml" {
				return fmt.Errorf("%w: %s is %s", ErrNotHTML, rawURL, mt)
			}
		}
		var err error
		if m, err = ParseMeta(body); err != nil {
			return err
		}
		if m.Canonical != "" {
			if abs, err := urls.Resolve(resp.Request.URL.String(), m.Canonical); err == nil {
				m.Canonical = abs
			}
		}
		return nil
	})
	return m, err
}

// Result pairs a URL with its outcome.
type Result struct {
	URL  string
	Meta Meta
	Err  error
}

// FetchAll fetches every URL with at most Workers in flight. Results
// keep the input order. The returned error joins the per-URL failures;
// a cancelled ctx stops pending fetches.
func (c *Client) FetchAll(ctx context.Context, rawURLs []string) ([]Result, error) {
	results := make([]Result, len(rawURLs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i, u := range rawURLs {
		results[i].URL = u
		g.Go(func() error {
			results[i].Meta, results[i].Err = c.Fetch(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}
