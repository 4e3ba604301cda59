// Package storage writes the exported site to S3 or a local directory.
//
// Both backends implement [Storage]. Keys are slash-separated paths relative to
// the site root ("index.html", "about/index.html", "static/site.css"). Content
// types are inferred from the key extension unless set explicitly.
//
//	store, err := storage.NewS3(ctx, storage.Config{Bucket: "charlieallen.dev", Region: "eu-west-2"})
//	if err != nil {
//		return err
//	}
//	_, err = store.Put(ctx, "index.html", bytes.NewReader(page), int64(len(page)),
//		storage.WithCacheControl("public, max-age=300"),
//	)
//
// For local previews use [NewLocal], which confines writes to its root directory.
package storage
