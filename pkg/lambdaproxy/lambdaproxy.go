package lambdaproxy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/charlieallen/portfolio/pkg/logger"
)

// DefaultFlushTimeout bounds the flush run after every invocation.
const DefaultFlushTimeout = 2 * time.Second

// Adapter serves API Gateway proxy events with an http.Handler.
type Adapter struct {
	handler      http.Handler
	logger       *slog.Logger
	flush        func(time.Duration) bool
	flushTimeout time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets the logger for conversion failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithFlush runs fn after every invocation, before the runtime freezes the
// process. Pass logger.Flush to deliver buffered Sentry events.
func WithFlush(fn func(time.Duration) bool) Option {
	return func(a *Adapter) {
		a.flush = fn
	}
}

// WithFlushTimeout overrides DefaultFlushTimeout.
func WithFlushTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.flushTimeout = d
		}
	}
}

// New wraps h so it can serve API Gateway proxy events.
func New(h http.Handler, opts ...Option) *Adapter {
	a := &Adapter{
		handler:      h,
		logger:       logger.NewNope(),
		flushTimeout: DefaultFlushTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start hands the adapter to the Lambda runtime. It does not return.
func (a *Adapter) Start() {
	lambda.Start(a.Handle)
}

// probe holds just enough of an event to tell the payload versions apart.
type probe struct {
	HTTPMethod     string `json:"httpMethod"`
	RequestContext struct {
		HTTP struct {
			Method string `json:"method"`
		} `json:"http"`
	} `json:"requestContext"`
}

// Handle serves one proxy event. Only events that cannot be routed at all
// fail the invocation; a bad body reaches the handler, which answers it
// like any other malformed request.
func (a *Adapter) Handle(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
	if a.flush != nil {
		defer a.flush(a.flushTimeout)
	}

	r, err := a.request(ctx, payload)
	if err != nil {
		a.logger.ErrorContext(ctx, "invalid proxy event", slog.String("error", err.Error()))
		return events.APIGatewayProxyResponse{}, err
	}

	w := newResponseRecorder()
	a.handler.ServeHTTP(w, r)
	return w.proxyResponse(), nil
}

func (a *Adapter) request(ctx context.Context, payload json.RawMessage) (*http.Request, error) {
	var p probe
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeEvent, err)
	}

	switch {
	case p.RequestContext.HTTP.Method != "":
		var e events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeEvent, err)
		}
		return RequestFromHTTPAPI(ctx, e)
	case p.HTTPMethod != "":
		var e events.APIGatewayProxyRequest
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeEvent, err)
		}
		return RequestFromREST(ctx, e)
	}
	return nil, ErrUnsupportedEvent
}
