// Package services contains the resource accessors of the club client. Each
// service wraps the HTTP transport for one resource family and returns typed
// results; a failed call is an error-arm Result, never a panic or a raw
// transport error.
package services

import "fmt"

// BulkResult summarizes a batched operation that must not abort on the first
// failure (bulk notification sends, multi-file uploads).
type BulkResult struct {
	Total      int
	Successful int
	Failed     int
}

func (r BulkResult) String() string {
	return fmt.Sprintf("%d ok, %d failed of %d", r.Successful, r.Failed, r.Total)
}
