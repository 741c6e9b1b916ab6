// Package encoder drives the external FFmpeg process that turns an ordered
// image sequence into a video.
//
// The command builder is a pure function from request to argument vector;
// the invoker runs the process with a bounded lifetime and inspects its exit
// status and output file. The encoder binary, codec, pixel format, and
// timeout all come from service configuration.
package encoder
