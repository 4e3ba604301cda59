package storage

import (
	"context"
	"io"
	"path"
	"strings"
)

// Storage stores objects by key.
type Storage interface {
	// Put writes size bytes from r under key, replacing any existing object.
	Put(ctx context.Context, key string, r io.Reader, size int64, opts ...Option) (*FileInfo, error)

	// Get returns the object body. The caller must close it.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Config holds S3 settings read from the environment.
type Config struct {
	Bucket    string `env:"EXPORT_BUCKET"`
	Prefix    string `env:"EXPORT_PREFIX"`
	Region    string `env:"AWS_REGION" envDefault:"eu-west-2"`
	Endpoint  string `env:"S3_ENDPOINT"`
	PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"false"`

	// Static credentials; the default AWS credential chain is used when empty.
	AccessKey string `env:"S3_ACCESS_KEY_ID"`
	SecretKey string `env:"S3_SECRET_ACCESS_KEY"`
}

// FileInfo describes a stored object.
type FileInfo struct {
	Key          string
	ContentType  string
	CacheControl string
	Size         int64
}

// ACL represents access control levels for stored objects.
type ACL string

const (
	ACLPrivate    ACL = "private"
	ACLPublicRead ACL = "public-read"
)

func (c *Config) validate() error {
	if c.Bucket == "" {
		return ErrInvalidConfig
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return ErrInvalidConfig
	}
	return nil
}

// objectKey joins prefix and key and rejects keys that escape the root.
func objectKey(prefix, key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	for seg := range strings.SplitSeq(key, "/") {
		if seg == ".." || seg == "." || seg == "" {
			return "", ErrInvalidKey
		}
	}
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return key, nil
	}
	return path.Join(prefix, key), nil
}
