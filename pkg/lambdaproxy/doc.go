// Package lambdaproxy runs an http.Handler behind API Gateway.
//
// Both REST API (payload 1.0, "httpMethod") and HTTP API (payload 2.0,
// "requestContext.http.method") proxy events are accepted. The event is
// turned into an *http.Request, served by the handler, and the recorded
// response is returned as an events.APIGatewayProxyResponse:
//
//	app := portfolio.New(...)
//	lambdaproxy.New(app, lambdaproxy.WithFlush(logger.Flush)).Start()
package lambdaproxy
