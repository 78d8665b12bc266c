package document

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	objects map[string]string
	bucket  string
	key     string
}

func (f *fakeS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = *params.Bucket
	f.key = *params.Key
	body, ok := f.objects[f.bucket+"/"+f.key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_LocalFile(t *testing.T) {
	path := writeFile(t, "test.txt", []byte("The text in test.txt"))
	l := NewLoader()

	for _, location := range []string{path, "file://" + path, "  " + path + "\n"} {
		got, err := l.Load(context.Background(), location)
		if err != nil {
			t.Fatalf("Load(%q) unexpected error: %v", location, err)
		}
		if got != "The text in test.txt" {
			t.Errorf("Load(%q) = %q", location, got)
		}
	}
}

func TestLoad_StripsBOM(t *testing.T) {
	path := writeFile(t, "bom.txt", append([]byte{0xEF, 0xBB, 0xBF}, "hola"...))

	got, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got != "hola" {
		t.Errorf("Load() = %q, want %q", got, "hola")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	got, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Load() = %q, want empty", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	binary := writeFile(t, "image.bin", []byte{0xff, 0xfe, 0x00, 0x80})

	tests := []struct {
		name     string
		location string
		want     error
	}{
		{name: "empty location", location: "", want: ErrInvalidLocation},
		{name: "missing file", location: filepath.Join(t.TempDir(), "missing.txt"), want: os.ErrNotExist},
		{name: "binary file", location: binary, want: ErrNotText},
		{name: "s3 without key", location: "s3://bucket", want: ErrInvalidLocation},
		{name: "s3 without bucket", location: "s3:///key.txt", want: ErrInvalidLocation},
	}

	l := NewLoader(WithS3Client(&fakeS3{}))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(context.Background(), tt.location)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load(%q) error = %v, want %v", tt.location, err, tt.want)
			}
		})
	}
}

func TestLoad_S3(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{"docs/en/readme.txt": "Hello from S3"}}
	l := NewLoader(WithS3Client(fake))

	got, err := l.Load(context.Background(), "s3://docs/en/readme.txt")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got != "Hello from S3" {
		t.Errorf("Load() = %q", got)
	}
	if fake.bucket != "docs" || fake.key != "en/readme.txt" {
		t.Errorf("GetObject bucket/key = %q/%q, want docs/en/readme.txt", fake.bucket, fake.key)
	}

	if _, err := l.Load(context.Background(), "s3://docs/missing.txt"); err == nil {
		t.Errorf("Load() of a missing object should fail")
	}
}
