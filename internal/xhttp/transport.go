package xhttp

import (
	"fmt"
	"net/http"

	"github.com/mohamadkhanafer/fitnessapp/internal/version"
)

type appTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*appTransport)(nil)

func (t *appTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "fitnessapp/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard app headers.
func NewTransport() http.RoundTripper {
	return &appTransport{base: http.DefaultTransport}
}
