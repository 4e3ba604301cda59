// Package sanitizer cleans HTML before it reaches templates or meta tags.
package sanitizer
