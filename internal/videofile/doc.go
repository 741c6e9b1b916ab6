// Package videofile provides read-only access to the streamed video file:
// size/content-type snapshots and byte-exact chunk reads for range requests.
package videofile
