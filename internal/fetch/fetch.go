// Package fetch resolves listing URLs to raw content. https URLs are fetched over the
// network, file URLs are read from the local filesystem.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ply/1.0)"

// ErrUnsupportedScheme is returned for URLs that are neither https nor file.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fetcher resolves a URL to its raw content.
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) (string, error)
}

// Options configures the fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	UseBrowser bool
	Client     *http.Client
	Logger     *slog.Logger
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Source is the Fetcher used outside of tests. It makes exactly one attempt per call.
type Source struct {
	opts   Options
	client *http.Client
	logger *slog.Logger
}

var _ Fetcher = (*Source)(nil)

// NewSource creates a Source. A nil opts uses DefaultOptions.
func NewSource(opts *Options) *Source {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}

	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{opts: o, client: client, logger: logger}
}

// Fetch dispatches on the URL scheme.
func (s *Source) Fetch(ctx context.Context, u *url.URL) (string, error) {
	if u == nil {
		return "", &Error{Message: "missing URL"}
	}

	switch u.Scheme {
	case "https":
		if s.opts.UseBrowser {
			return s.render(ctx, u)
		}
		return s.get(ctx, u)
	case "file":
		return s.readFile(u)
	default:
		return "", &Error{
			URL:     u.String(),
			Message: fmt.Sprintf("scheme %q", u.Scheme),
			Cause:   ErrUnsupportedScheme,
		}
	}
}

func (s *Source) get(ctx context.Context, u *url.URL) (string, error) {
	urlStr := u.String()
	if u.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL: missing host"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", s.opts.UserAgent)
	for key, value := range s.opts.Headers {
		req.Header.Set(key, value)
	}

	s.logger.Debug("fetching listing", "url", urlStr)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	s.logger.Debug("fetched listing", "url", urlStr, "status", resp.StatusCode, "bytes", len(body))
	return string(body), nil
}

func (s *Source) readFile(u *url.URL) (string, error) {
	if u.Host != "" && u.Host != "localhost" {
		return "", &Error{URL: u.String(), Message: fmt.Sprintf("file URL with remote host %q", u.Host)}
	}
	if u.Path == "" {
		return "", &Error{URL: u.String(), Message: "file URL without a path"}
	}

	content, err := os.ReadFile(u.Path)
	if err != nil {
		return "", &Error{
			URL:     u.String(),
			Message: fmt.Sprintf("failed to read file at %s", u.Path),
			Cause:   err,
		}
	}

	s.logger.Debug("read local listing", "path", u.Path, "bytes", len(content))
	return string(content), nil
}
