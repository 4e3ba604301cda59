// Package health provides liveness and readiness handlers.
//
// [LivenessHandler] always answers OK while the process runs. [ReadinessHandler]
// runs every named [CheckFunc] concurrently under a shared timeout and answers
// 503 when any fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis":  redis.Healthcheck(client),
//	    "mailer": mailerCheck,
//	}))
//
// Responses are plain text unless the client sends Accept: application/json or
// ?format=json, in which case the per-check status is included.
package health
