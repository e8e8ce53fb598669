package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Sentinel errors returned (wrapped) by every Fetcher implementation.
// Callers are expected to branch on them with errors.Is.
var (
	ErrUserNotFound      = errors.New("github user not found")
	ErrRateLimited       = errors.New("github rate limit exceeded")
	ErrUnexpectedStatus  = errors.New("unexpected github response status")
	ErrMalformedResponse = errors.New("malformed github response body")
	ErrTransport         = errors.New("github request failed")
)

// classifyRESTError maps an error returned by the go-github client onto one of the sentinels.
func classifyRESTError(err error) error {
	var (
		rateErr   *github.RateLimitError
		abuseErr  *github.AbuseRateLimitError
		respErr   *github.ErrorResponse
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case errors.As(err, &respErr):
		return fmt.Errorf("%w: %w", statusSentinel(respErr.Response), err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}

func statusSentinel(resp *http.Response) error {
	if resp == nil {
		return ErrUnexpectedStatus
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrUserNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return ErrUnexpectedStatus
	}
}

// classifyGraphQLError does the same for githubv4, which only exposes plain error strings
// for non-200 statuses and GraphQL-level errors.
func classifyGraphQLError(err error) error {
	var (
		urlErr    *url.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	msg := err.Error()
	switch {
	case errors.As(err, &urlErr):
		return fmt.Errorf("%w: %w", ErrTransport, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	case strings.Contains(msg, "Could not resolve to a"):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "RATE_LIMITED"):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
	}
}
