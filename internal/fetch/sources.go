package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/abelbrown/courtside/internal/logging"
	"github.com/abelbrown/courtside/internal/model"
	"golang.org/x/time/rate"
)

// SourceConfig selects and configures a network or file source.
type SourceConfig struct {
	Kind    string // "http" or "file"
	URL     string
	Path    string
	Timeout time.Duration
}

// NewSource builds the source described by sc.
func NewSource(sc SourceConfig) (Source, error) {
	switch sc.Kind {
	case "http":
		if sc.URL == "" {
			return nil, fmt.Errorf("http source needs a URL")
		}
		return NewSheetSource(sc.URL, sc.Timeout), nil
	case "file":
		if sc.Path == "" {
			return nil, fmt.Errorf("file source needs a path")
		}
		return &FileSource{Path: sc.Path}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", sc.Kind)
	}
}

// Throttled limits how often the wrapped source is hit. Calls inside the
// minimum gap fail fast with ErrThrottled instead of waiting.
type Throttled struct {
	src     Source
	limiter *rate.Limiter
}

// NewThrottled allows one load per gap, with the first load always allowed.
// A zero gap disables throttling.
func NewThrottled(src Source, gap time.Duration) *Throttled {
	limit := rate.Inf
	if gap > 0 {
		limit = rate.Every(gap)
	}
	return &Throttled{src: src, limiter: rate.NewLimiter(limit, 1)}
}

func (t *Throttled) Name() string { return t.src.Name() }

func (t *Throttled) Records(ctx context.Context) ([]model.Record, error) {
	if !t.limiter.Allow() {
		logging.Warn("Refresh throttled", "source", t.src.Name())
		return nil, ErrThrottled
	}
	return t.src.Records(ctx)
}
