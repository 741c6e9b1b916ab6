// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// This package centralizes all application configuration and provides
// consistent logging throughout the application lifecycle.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig],
// with a .env file in the working directory applied first when present.
// The following environment variables are supported:
//
//   - VIDEO_PATH: Path to the video file served by /stream (default: /videos/video.mp4)
//   - CONTENT_TYPE: Explicit Content-Type for streaming; empty infers from the extension
//   - HOST: HTTP server bind address (default: 0.0.0.0)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable the metrics server (default: true)
//   - DEFAULT_IMAGE_WIDTH: Output video width when the request omits one (default: 800)
//   - DEFAULT_IMAGE_HEIGHT: Output video height when the request omits one (default: 600)
//   - DEFAULT_DURATION_PER_IMAGE: Seconds each image is shown (default: 1)
//   - FFMPEG_PATH: Encoder executable (default: ffmpeg)
//   - FFMPEG_CODEC: Output video codec (default: libx264)
//   - FFMPEG_PIXEL_FORMAT: Output pixel format (default: yuv420p)
//   - ENCODE_TIMEOUT: Per-job encoder time limit as a Go duration (default: 10m)
//   - ENCODE_WORKERS: Override for the concurrent-encode cap
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// # Degraded conditions
//
// A missing video file or an unresolvable encoder executable does not stop
// startup. Both are logged as warnings and reported by the health endpoints;
// the affected operations fail per-request.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via
// [GetBuildInfo]: Version, Commit, BuildTime, and GoVersion.
package startup
