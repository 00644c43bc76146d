package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rshade/userdir/internal/logging"
)

// Source defaults match the public randomuser endpoint the directory uses.
const (
	DefaultURL         = "https://randomuser.me/api/"
	DefaultResults     = 50
	DefaultNationality = "us"
	DefaultTimeout     = 10 * time.Second

	// maxBodyBytes bounds how much of a response body is decoded.
	maxBodyBytes = 8 << 20

	component = "users"
)

// Source provides the directory entries. Fetch never fails: any error
// yields an empty slice.
type Source interface {
	Fetch(ctx context.Context) []User
}

// HTTPSource fetches users with a single GET request.
type HTTPSource struct {
	BaseURL     string
	Results     int
	Nationality string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// NewHTTPSource returns an HTTPSource using the public defaults.
func NewHTTPSource() *HTTPSource {
	return &HTTPSource{
		BaseURL:     DefaultURL,
		Results:     DefaultResults,
		Nationality: DefaultNationality,
		Timeout:     DefaultTimeout,
		HTTPClient:  http.DefaultClient,
	}
}

// Fetch performs the request. Statuses of 400 and above, transport errors
// and undecodable bodies are logged and produce an empty directory.
func (s *HTTPSource) Fetch(ctx context.Context) []User {
	logger := logging.FromContext(ctx).With().Str(logging.FieldComponent, component).Logger()

	users, err := s.fetch(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("url", s.BaseURL).Msg("user fetch failed, continuing with an empty directory")
		return []User{}
	}

	logger.Debug().Int("count", len(users)).Str("url", s.BaseURL).Msg("users fetched")
	return users
}

func (s *HTTPSource) fetch(ctx context.Context) ([]User, error) {
	endpoint, err := s.requestURL()
	if err != nil {
		return nil, err
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return decode(io.LimitReader(resp.Body, maxBodyBytes))
}

func (s *HTTPSource) requestURL() (string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing source url: %w", err)
	}

	q := u.Query()
	if s.Results > 0 {
		q.Set("results", strconv.Itoa(s.Results))
	}
	if s.Nationality != "" {
		q.Set("nat", s.Nationality)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FileSource reads a saved API response from disk.
type FileSource struct {
	Path string
}

// Fetch reads and decodes the file. Missing or malformed files are logged
// and produce an empty directory.
func (s *FileSource) Fetch(ctx context.Context) []User {
	logger := logging.FromContext(ctx).With().Str(logging.FieldComponent, component).Logger()

	f, err := os.Open(s.Path)
	if err != nil {
		logger.Warn().Err(err).Str("path", s.Path).Msg("user file unreadable, continuing with an empty directory")
		return []User{}
	}
	defer f.Close()

	users, err := decode(f)
	if err != nil {
		logger.Warn().Err(err).Str("path", s.Path).Msg("user file malformed, continuing with an empty directory")
		return []User{}
	}

	logger.Debug().Int("count", len(users)).Str("path", s.Path).Msg("users loaded")
	return users
}

func decode(r io.Reader) ([]User, error) {
	var body response
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	if body.Results == nil {
		return []User{}, nil
	}
	return body.Results, nil
}
