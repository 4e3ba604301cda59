// Package cookie provides HTTP cookie management with optional HMAC signing.
//
// Plain cookies work without a secret. Signed cookies and flash messages need a
// secret of at least 32 bytes and return ErrNoSecret otherwise.
//
//	m := cookie.New(cookie.WithSecret(os.Getenv("COOKIE_SECRET")), cookie.WithSecure(true))
//
//	// POST handler
//	_ = m.SetFlash(w, "contact", contactFlash{Sent: true})
//
//	// next GET
//	var f contactFlash
//	if err := m.Flash(w, r, "contact", &f); err == nil && f.Sent {
//		// show confirmation banner
//	}
package cookie
