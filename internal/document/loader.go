// Package document loads text documents from the local filesystem or S3.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var (
	// ErrInvalidLocation is returned for an empty or malformed document location.
	ErrInvalidLocation = errors.New("document: invalid location")

	// ErrNotText is returned when a document is not valid UTF-8.
	ErrNotText = errors.New("document: content is not UTF-8 text")
)

const s3Scheme = "s3://"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ObjectGetter is the subset of the S3 client used by Loader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader reads a document and returns its text.
// Locations are local paths, file:// URLs, or s3://bucket/key URIs.
type Loader struct {
	logger *zap.Logger

	mu sync.Mutex
	s3 ObjectGetter
}

// Option customizes a Loader.
type Option func(*Loader)

// WithS3Client sets the client used for s3:// locations. Without it the
// default AWS configuration is loaded on first use.
func WithS3Client(c ObjectGetter) Option {
	return func(l *Loader) {
		l.s3 = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the text content of the document at location.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", fmt.Errorf("%w: location is empty", ErrInvalidLocation)
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(location, s3Scheme) {
		data, err = l.loadS3(ctx, location)
	} else {
		data, err = os.ReadFile(strings.TrimPrefix(location, "file://"))
		if err != nil {
			err = fmt.Errorf("failed to read %s: %w", location, err)
		}
	}
	if err != nil {
		return "", err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, location)
	}

	l.logger.Debug("Loaded document", zap.String("location", location), zap.Int("bytes", len(data)))
	return string(data), nil
}

func (l *Loader) loadS3(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := parseS3URI(location)
	if err != nil {
		return nil, err
	}

	client, err := l.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", location, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}

func (l *Loader) s3Client(ctx context.Context) (ObjectGetter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.s3 != nil {
		return l.s3, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	l.s3 = s3.NewFromConfig(cfg)
	return l.s3, nil
}

// parseS3URI splits s3://bucket/key.
func parseS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q is not s3://bucket/key", ErrInvalidLocation, uri)
	}
	return bucket, key, nil
}
