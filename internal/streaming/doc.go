// Package streaming serves video bytes over HTTP with partial-content
// semantics and timeout-protected delivery.
//
// The Responder implements the 200/206/416/400 decision table for Range
// requests; the TimeoutWriter guards full-file streams against slow or
// disconnected clients by bounding individual writes and idle periods.
package streaming
