package lambdaproxy

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// RequestFromREST converts a REST API (payload 1.0) proxy event.
func RequestFromREST(ctx context.Context, e events.APIGatewayProxyRequest) (*http.Request, error) {
	body, bodyErr := decodeBody(e.Body, e.IsBase64Encoded)

	query := url.Values{}
	if len(e.MultiValueQueryStringParameters) > 0 {
		for k, vs := range e.MultiValueQueryStringParameters {
			for _, v := range vs {
				query.Add(k, v)
			}
		}
	} else {
		for k, v := range e.QueryStringParameters {
			query.Set(k, v)
		}
	}

	header := http.Header{}
	if len(e.MultiValueHeaders) > 0 {
		for k, vs := range e.MultiValueHeaders {
			for _, v := range vs {
				header.Add(k, v)
			}
		}
	} else {
		for k, v := range e.Headers {
			header.Set(k, v)
		}
	}

	return newRequest(ctx, requestParts{
		method:   e.HTTPMethod,
		path:     e.Path,
		rawQuery: query.Encode(),
		header:   header,
		body:     body,
		bodyErr:  bodyErr,
		host:     e.RequestContext.DomainName,
		sourceIP: e.RequestContext.Identity.SourceIP,
		id:       e.RequestContext.RequestID,
	})
}

// RequestFromHTTPAPI converts an HTTP API (payload 2.0) proxy event.
func RequestFromHTTPAPI(ctx context.Context, e events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body, bodyErr := decodeBody(e.Body, e.IsBase64Encoded)

	header := http.Header{}
	for k, v := range e.Headers {
		// payload 2.0 joins repeated headers with commas
		header.Set(k, v)
	}
	if len(e.Cookies) > 0 {
		header.Set("Cookie", strings.Join(e.Cookies, "; "))
	}

	path := e.RawPath
	if path == "" {
		path = e.RequestContext.HTTP.Path
	}

	return newRequest(ctx, requestParts{
		method:   e.RequestContext.HTTP.Method,
		path:     path,
		rawQuery: e.RawQueryString,
		header:   header,
		body:     body,
		bodyErr:  bodyErr,
		host:     e.RequestContext.DomainName,
		sourceIP: e.RequestContext.HTTP.SourceIP,
		id:       e.RequestContext.RequestID,
	})
}

type requestParts struct {
	method   string
	path     string
	rawQuery string
	header   http.Header
	body     []byte
	bodyErr  error
	host     string
	sourceIP string
	id       string
}

// newRequest builds the request served by the handler. An undecodable body
// is not an invocation failure: reading it fails, so the handler answers
// with its own client error.
func newRequest(ctx context.Context, p requestParts) (*http.Request, error) {
	if p.path == "" {
		p.path = "/"
	}
	u := &url.URL{Path: p.path, RawQuery: p.rawQuery}

	var body io.Reader = bytes.NewReader(p.body)
	if p.bodyErr != nil {
		body = errReader{p.bodyErr}
	}

	r, err := http.NewRequestWithContext(ctx, p.method, u.RequestURI(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeEvent, err)
	}
	r.Header = p.header
	r.ContentLength = int64(len(p.body))
	if p.bodyErr != nil {
		r.ContentLength = -1
	}
	r.RequestURI = u.RequestURI()

	r.Host = p.header.Get("Host")
	if r.Host == "" {
		r.Host = p.host
	}
	if p.sourceIP != "" {
		r.RemoteAddr = net.JoinHostPort(p.sourceIP, "0")
	}

	if r.Header.Get("X-Request-ID") == "" {
		id := p.id
		if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
			id = lc.AwsRequestID
		}
		if id != "" {
			r.Header.Set("X-Request-ID", id)
		}
	}
	return r, nil
}

func decodeBody(body string, isBase64 bool) ([]byte, error) {
	if !isBase64 {
		return []byte(body), nil
	}
	b, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeBody, err)
	}
	return b, nil
}

// errReader fails every read with err.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
