// Package fetch loads the video dataset from its published CSV export.
//
// A load is all or nothing: any transport or parse failure returns an
// *IngestionError and no records. Individual malformed rows are not errors;
// rows without a Video ID are dropped and bad counters degrade to zero.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/abelbrown/courtside/internal/model"
)

// Source yields the full record set. Every call returns a fresh snapshot.
type Source interface {
	Name() string
	Records(ctx context.Context) ([]model.Record, error)
}

// ErrThrottled is returned when a refresh is requested too soon after the
// previous one.
var ErrThrottled = errors.New("refresh throttled")

// IngestionError marks a whole-payload failure: the dataset could not be
// fetched or parsed.
type IngestionError struct {
	Source string
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// Wrap turns err into an *IngestionError for src unless it already is one
// or is ErrThrottled. nil stays nil.
func Wrap(src string, err error) error {
	if err == nil || errors.Is(err, ErrThrottled) {
		return err
	}
	var ie *IngestionError
	if errors.As(err, &ie) {
		return err
	}
	return &IngestionError{Source: src, Err: err}
}

// Fetcher downloads CSV payloads over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the given HTTP client timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get retrieves url and parses the body as the dataset CSV.
func (f *Fetcher) Get(ctx context.Context, url string) ([]model.Record, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Courtside/0.3 (+https://github.com/abelbrown/courtside)")
	req.Header.Set("Accept", "text/csv")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	return ParseCSV(resp.Body)
}

// SheetSource is the published spreadsheet export.
type SheetSource struct {
	URL     string
	fetcher *Fetcher
}

// NewSheetSource creates a source for the CSV export at url.
func NewSheetSource(url string, timeout time.Duration) *SheetSource {
	return &SheetSource{URL: url, fetcher: NewFetcher(timeout)}
}

func (s *SheetSource) Name() string { return "sheet" }

func (s *SheetSource) Records(ctx context.Context) ([]model.Record, error) {
	records, err := s.fetcher.Get(ctx, s.URL)
	return records, Wrap(s.Name(), err)
}

// FileSource reads a local CSV export.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file " + s.Path }

func (s *FileSource) Records(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, Wrap(s.Name(), err)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, Wrap(s.Name(), err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	return records, Wrap(s.Name(), err)
}
