// Package handlers provides HTTP request handlers for the video streamer API.
//
// It includes handlers for:
//   - Video streaming with byte-range support
//   - Video creation from image sequences
//   - Job status lookup
//   - Standalone image validation
//   - Health checks and version information
package handlers
