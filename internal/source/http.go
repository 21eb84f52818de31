package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bakito/rblxapi2cpp/internal/document"
)

// DefaultBaseURL serves the engine reference of the creator-docs repository.
const DefaultBaseURL = "https://cdn.jsdelivr.net/gh/Roblox/creator-docs@master/content/en-us/reference/engine"

// StatusError is returned for responses with a non-success status code.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d %s for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// HTTPSource downloads documents from a content delivery network.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns a source for baseURL. A zero timeout disables the client timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// URL returns the location of the document.
func (s *HTTPSource) URL(name string, kind document.Kind) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + kind.Namespace() + "/" + url.PathEscape(name) + ".yaml"
}

// Get performs a single GET request and returns the response body.
func (s *HTTPSource) Get(ctx context.Context, name string, kind document.Kind) (data []byte, err error) {
	u := s.URL(name, kind)
	slog.DebugContext(ctx, "Downloading document", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{StatusCode: res.StatusCode, URL: u}
	}

	data, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
