// Command portfolio serves the portfolio site, runs the contact relay on AWS
// Lambda, or exports the site for static hosting.
//
//	portfolio serve            # HTTP server with pages, contact form and API
//	portfolio lambda           # API Gateway contact relay
//	portfolio export --dir out # static site into a directory or S3 bucket
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
