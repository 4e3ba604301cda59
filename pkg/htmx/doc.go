// Package htmx detects HTMX requests and sets HTMX response headers.
//
// The contact form posts with hx-post and swaps the returned partial in place.
// Handlers use IsHTMX to choose between a partial and a full Post/Redirect/Get:
//
//	if htmx.IsHTMX(r) {
//		cfg := htmx.NewConfig(
//			htmx.WithReswap(htmx.SwapOuterHTML),
//			htmx.WithTriggerDetail("contact:sent", map[string]string{"id": receipt.ID}),
//		)
//		cfg.ApplyHeaders(w)
//		// render partial
//		return
//	}
//	htmx.Redirect(w, r, "/contact")
//
// Redirect answers HTMX requests with HX-Redirect and status 200, and plain
// requests with 303 See Other.
package htmx
