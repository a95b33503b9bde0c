// Package fetch transfers ontology documents from HTTP servers and the local
// filesystem.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.trai.ch/onto/internal/build"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

var _ ports.Fetcher = (*Fetcher)(nil)

// AcceptHeader prefers RDF/XML, then the text syntaxes.
const AcceptHeader = "application/rdf+xml, text/turtle;q=0.9, application/n-triples;q=0.8, text/n3;q=0.7, */*;q=0.1"

const (
	// breakerTrip is the number of consecutive failures that opens a host's breaker.
	breakerTrip = 3
	// breakerCooldown is how long an open breaker rejects requests.
	breakerCooldown = 30 * time.Second
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Fetcher implements ports.Fetcher. Network requests go through one circuit
// breaker per host.
type Fetcher struct {
	client *http.Client
	logger ports.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// New creates a Fetcher. A nil client means a client without its own timeout;
// deadlines come from the context.
func New(client *http.Client, logger ports.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{
		client:   client,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Fetch writes the document behind src to dst.
func (f *Fetcher) Fetch(ctx context.Context, src domain.Source, dst io.Writer) (string, error) {
	if !src.IsNetwork() {
		return f.copyFile(src.Locator, dst)
	}

	u, err := url.Parse(src.Locator)
	if err != nil {
		return "", domain.Fail(domain.ErrSourceUnreachable, err, "parse url", "locator", src.Locator)
	}

	final, err := f.breaker(u.Host).Execute(func() (any, error) {
		return f.get(ctx, src.Locator, dst)
	})
	if err != nil {
		return "", domain.Fail(domain.ErrSourceUnreachable, err, "fetch failed", "locator", src.Locator)
	}
	return final.(string), nil
}

func (f *Fetcher) get(ctx context.Context, locator string, dst io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, http.NoBody)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", build.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return "", err
	}

	return resp.Request.URL.String(), nil
}

func (f *Fetcher) copyFile(path string, dst io.Writer) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", domain.Fail(domain.ErrSourceUnreachable, err, "resolve path", "path", path)
	}

	in, err := os.Open(abs) //nolint:gosec // Path is the user's locator
	if err != nil {
		return "", domain.Fail(domain.ErrSourceUnreachable, err, "open file", "path", abs)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return "", domain.Fail(domain.ErrSourceUnreachable, err, "stat file", "path", abs)
	}
	if !info.Mode().IsRegular() {
		return "", domain.Fail(domain.ErrSourceUnreachable, errors.New("not a regular file"), "open file", "path", abs)
	}

	if _, err := io.Copy(dst, in); err != nil {
		return "", domain.Fail(domain.ErrSourceUnreachable, err, "copy file", "path", abs)
	}
	return abs, nil
}

func (f *Fetcher) breaker(host string) *gobreaker.CircuitBreaker {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cb, ok := f.breakers[host]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTrip
		},
		IsSuccessful: hostAlive,
		OnStateChange: func(name string, from, to gobreaker.State) {
			if f.logger != nil {
				f.logger.Warn(fmt.Sprintf("host %s: circuit %s -> %s", name, from, to))
			}
		},
	})
	f.breakers[host] = cb
	return cb
}

// hostAlive decides whether an outcome counts against the host. Client-side
// cancellations and 4xx answers do not.
func hostAlive(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.Code < 500
	}
	return false
}
