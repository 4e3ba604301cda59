// Package export renders the whole site into a storage.Storage laid out for
// static hosting on S3 behind CloudFront: one index.html per page directory,
// 404.html, robots.txt, sitemap.xml and the static assets.
//
// Exported pages post the contact form to an external endpoint, so build
// the views with views.WithContactEndpoint before exporting.
package export
