// Package httprange parses HTTP Range headers into validated byte intervals.
//
// Only the single-range form of the bytes unit is supported. Parsing is a pure
// function of the header value and the target file size; no I/O is performed.
package httprange
