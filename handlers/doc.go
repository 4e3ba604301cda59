// Package handlers declares the portfolio's routes: the pages, the
// server-rendered contact form, the JSON contact API, robots.txt and
// sitemap.xml, plus the error handler that renders failures as JSON on
// the API and as HTML pages everywhere else.
package handlers
