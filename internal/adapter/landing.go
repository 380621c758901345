// Package adapter holds clients for services outside the application.
// Its only member today is the probe for the landing site users are sent to
// after login.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
)

var ErrEmptyLandingURL = errors.New("landing url is empty")

// LandingProbe checks that the external landing destination answers, so a
// misconfigured redirect target shows up in the logs at startup instead of
// as a broken redirect for the first user who logs in.
type LandingProbe struct {
	client *resty.Client
	url    string

	logger *logger.Logger
}

// NewLandingProbe builds a probe for the given landing URL.
// Returns an error if the URL is empty or cannot be parsed.
func NewLandingProbe(landingURL string, timeout time.Duration, logger *logger.Logger) (*LandingProbe, error) {
	if strings.TrimSpace(landingURL) == "" {
		return nil, ErrEmptyLandingURL
	}
	if _, err := url.ParseRequestURI(landingURL); err != nil {
		return nil, fmt.Errorf("invalid landing url: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	return &LandingProbe{client: cli, url: landingURL, logger: logger}, nil
}

// Check performs a single HEAD request against the landing URL. An
// unreachable or erroring destination is reported as an error; the caller
// decides whether that is fatal.
func (p *LandingProbe) Check(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		Head(p.url)
	if err != nil {
		return fmt.Errorf("landing url unreachable: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("landing url answered %d", resp.StatusCode())
	}

	p.logger.Info().
		Str("url", p.url).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("landing url reachable")

	return nil
}
