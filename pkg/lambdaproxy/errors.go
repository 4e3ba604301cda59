package lambdaproxy

import "errors"

var (
	ErrUnsupportedEvent = errors.New("lambdaproxy: event is not an API Gateway proxy request")
	ErrDecodeEvent      = errors.New("lambdaproxy: failed to decode event")
	ErrDecodeBody       = errors.New("lambdaproxy: failed to decode base64 body")
)
