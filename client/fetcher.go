package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/plantimetable/calstream/compress"
	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
	"github.com/plantimetable/calstream/internal/hash"
	"github.com/plantimetable/calstream/internal/log"
	"github.com/plantimetable/calstream/internal/options"
	"github.com/plantimetable/calstream/internal/pool"
	"github.com/plantimetable/calstream/stream"
)

// DefaultAcceptEncoding advertises every codec the client can decode.
var DefaultAcceptEncoding = []string{
	format.CompressionZstd.ContentEncoding(),
	format.CompressionS2.ContentEncoding(),
	format.CompressionLZ4.ContentEncoding(),
	format.CompressionNone.ContentEncoding(),
}

// FetcherOption configures a Fetcher.
type FetcherOption = options.Option[*Fetcher]

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) FetcherOption {
	return options.New(func(f *Fetcher) error {
		if c == nil {
			return fmt.Errorf("%w: nil http client", errs.ErrInvalidConfig)
		}
		f.httpClient = c

		return nil
	})
}

// WithLogger sets the base log entry. Each fetch adds request_id and url fields.
func WithLogger(entry *logrus.Entry) FetcherOption {
	return options.NoError(func(f *Fetcher) {
		f.logger = entry
	})
}

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) FetcherOption {
	return options.New(func(f *Fetcher) error {
		if d <= 0 {
			return fmt.Errorf("%w: timeout must be positive, got %s", errs.ErrInvalidConfig, d)
		}
		f.timeout = d

		return nil
	})
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return options.NoError(func(f *Fetcher) {
		f.userAgent = ua
	})
}

// WithAcceptEncoding restricts the advertised content encodings.
func WithAcceptEncoding(names ...string) FetcherOption {
	return options.New(func(f *Fetcher) error {
		encodings := make([]string, 0, len(names))
		for _, name := range names {
			t, err := format.ParseCompression(name)
			if err != nil {
				return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
			}
			encodings = append(encodings, t.ContentEncoding())
		}
		f.acceptEncoding = strings.Join(encodings, ", ")

		return nil
	})
}

// Fetcher downloads and decodes calstream bodies.
//
// It is safe for concurrent use. The decode memo holds the digest and points
// of the last successfully decoded body.
type Fetcher struct {
	httpClient     *http.Client
	logger         *logrus.Entry
	timeout        time.Duration
	userAgent      string
	acceptEncoding string

	mu         sync.Mutex
	hasLast    bool
	lastDigest uint64
	lastPoints []format.Point
}

// NewFetcher creates a Fetcher.
//
// Defaults: http.DefaultClient, the standard logger, no timeout beyond the
// caller's context, and every supported encoding advertised.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		httpClient:     http.DefaultClient,
		logger:         log.NewLogger(),
		userAgent:      "calstream",
		acceptEncoding: strings.Join(DefaultAcceptEncoding, ", "),
	}

	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Fetch downloads the body at url and decodes it into points.
//
// Parameters:
//   - ctx: Cancels the request and the body read
//   - url: Stream location
//
// Returns:
//   - []format.Point: Decoded points in stream order; empty for an empty body
//   - error: errs.ErrFetchFailed for transport failures, errs.ErrUnexpectedStatus
//     for non-2xx responses, errs.ErrUnsupportedCompression for unknown
//     encodings, errs.ErrMalformedToken or errs.ErrFieldCount for bad bodies
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]format.Point, error) {
	requestId := uuid.NewString()
	ctx = log.WithRequestId(ctx, requestId)
	logger := log.GetLogger(ctx, f.logger).WithField("url", url)

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrFetchFailed, err)
	}
	req.Header.Set("Accept-Encoding", f.acceptEncoding)
	req.Header.Set(log.HttpXRequestId, requestId)
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("fetch failed")
		return nil, fmt.Errorf("%w: %w", errs.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithField("status", resp.StatusCode).Warn("unexpected status")
		return nil, fmt.Errorf("%w: %s", errs.ErrUnexpectedStatus, resp.Status)
	}

	buf := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(buf)

	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("%w: read body: %w", errs.ErrFetchFailed, err)
	}

	codec, compression, err := compress.ForContentEncoding(resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, err
	}

	body, err := codec.Decompress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decompress %s body: %w", compression, err)
	}

	logger = logger.WithFields(logrus.Fields{
		"compression": compression.String(),
		"wire_bytes":  buf.Len(),
		"body_bytes":  len(body),
		"elapsed":     time.Since(start),
	})

	digest := hash.Digest(body)
	if points, ok := f.cached(digest); ok {
		logger.WithField("digest", hash.Hex(digest)).Debug("stream unchanged")
		return points, nil
	}

	points, err := stream.Parse(string(body))
	if err != nil {
		logger.WithError(err).Warn("decode failed")
		return nil, err
	}
	f.remember(digest, points)

	logger.WithField("points", len(points)).Debug("decoded stream")

	return points, nil
}

func (f *Fetcher) cached(digest uint64) ([]format.Point, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.hasLast || f.lastDigest != digest {
		return nil, false
	}

	return slices.Clone(f.lastPoints), true
}

func (f *Fetcher) remember(digest uint64, points []format.Point) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.hasLast = true
	f.lastDigest = digest
	f.lastPoints = slices.Clone(points)
}
