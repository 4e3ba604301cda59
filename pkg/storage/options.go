package storage

// Option configures Put operations.
type Option func(*putOptions)

type putOptions struct {
	contentType  string
	cacheControl string
	acl          ACL
}

func newPutOptions(key string, opts []Option) *putOptions {
	o := &putOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.contentType == "" {
		o.contentType = ContentTypeFor(key)
	}
	return o
}

// WithContentType overrides the content type inferred from the key.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithCacheControl sets the Cache-Control metadata served by S3 and CloudFront.
func WithCacheControl(v string) Option {
	return func(o *putOptions) {
		o.cacheControl = v
	}
}

// WithACL sets a canned ACL. Buckets served through CloudFront origin access
// usually leave this unset.
func WithACL(acl ACL) Option {
	return func(o *putOptions) {
		o.acl = acl
	}
}
