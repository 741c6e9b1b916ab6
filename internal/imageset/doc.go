// Package imageset validates candidate input images before a video creation
// job is committed.
//
// Validation checks existence, readability, and image format by decoding the
// file header. It is exhaustive: every failing path is reported with its own
// reason so a caller can fix all problems in one round trip.
package imageset
