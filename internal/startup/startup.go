package startup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"video-streamer/internal/encoder"
	"video-streamer/internal/logging"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Config holds all application configuration
type Config struct {
	VideoPath   string
	ContentType string
	Host        string
	Port        string
	MetricsPort string

	DefaultImageWidth  int
	DefaultImageHeight int
	DefaultDuration    float64

	FFmpegPath        string
	FFmpegCodec       string
	FFmpegPixelFormat string
	EncodeTimeout     time.Duration

	LogHealthChecks bool
	MetricsEnabled  bool
}

// EncoderConfig returns the encoder configuration derived from the
// environment.
func (c *Config) EncoderConfig() encoder.Config {
	return encoder.Config{
		Path:        c.FFmpegPath,
		Codec:       c.FFmpegCodec,
		PixelFormat: c.FFmpegPixelFormat,
		Timeout:     c.EncodeTimeout,
	}
}

// LoadConfig loads and validates configuration from environment variables.
// A .env file in the working directory is applied first, if present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Warn("failed to load .env file: %v", err)
	}

	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	videoPath := getEnv("VIDEO_PATH", "/videos/video.mp4")
	contentType := getEnv("CONTENT_TYPE", "")
	host := getEnv("HOST", "0.0.0.0")
	port := getEnv("PORT", "8080")
	metricsPort := getEnv("METRICS_PORT", "9090")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	defaultWidth := getEnvInt("DEFAULT_IMAGE_WIDTH", 800)
	defaultHeight := getEnvInt("DEFAULT_IMAGE_HEIGHT", 600)
	defaultDuration := getEnvFloat("DEFAULT_DURATION_PER_IMAGE", 1)
	ffmpegPath := getEnv("FFMPEG_PATH", "ffmpeg")
	ffmpegCodec := getEnv("FFMPEG_CODEC", "libx264")
	ffmpegPixFmt := getEnv("FFMPEG_PIXEL_FORMAT", "yuv420p")
	encodeTimeout := getEnvDuration("ENCODE_TIMEOUT", 10*time.Minute)
	logHealthChecks := getEnvBool("LOG_HEALTH_CHECKS", true)

	logging.Info("  VIDEO_PATH:                 %s", videoPath)
	logging.Info("  CONTENT_TYPE:               %s", orInferred(contentType))
	logging.Info("  HOST:                       %s", host)
	logging.Info("  PORT:                       %s", port)
	logging.Info("  METRICS_PORT:               %s", metricsPort)
	logging.Info("  METRICS_ENABLED:            %v", metricsEnabled)
	logging.Info("  DEFAULT_IMAGE_WIDTH:        %d", defaultWidth)
	logging.Info("  DEFAULT_IMAGE_HEIGHT:       %d", defaultHeight)
	logging.Info("  DEFAULT_DURATION_PER_IMAGE: %g", defaultDuration)
	logging.Info("  FFMPEG_PATH:                %s", ffmpegPath)
	logging.Info("  FFMPEG_CODEC:               %s", ffmpegCodec)
	logging.Info("  FFMPEG_PIXEL_FORMAT:        %s", ffmpegPixFmt)
	logging.Info("  ENCODE_TIMEOUT:             %v", encodeTimeout)
	logging.Info("  LOG_HEALTH_CHECKS:          %v", logHealthChecks)
	logging.Info("  LOG_LEVEL:                  %s", logging.GetLevel())

	if defaultWidth <= 0 || defaultHeight <= 0 {
		return nil, fmt.Errorf("default image dimensions must be positive, got %dx%d", defaultWidth, defaultHeight)
	}
	if defaultDuration <= 0 {
		return nil, fmt.Errorf("default duration per image must be positive, got %g", defaultDuration)
	}

	videoPath, err := filepath.Abs(videoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve video path: %w", err)
	}

	config := &Config{
		VideoPath:          videoPath,
		ContentType:        contentType,
		Host:               host,
		Port:               port,
		MetricsPort:        metricsPort,
		MetricsEnabled:     metricsEnabled,
		DefaultImageWidth:  defaultWidth,
		DefaultImageHeight: defaultHeight,
		DefaultDuration:    defaultDuration,
		FFmpegPath:         ffmpegPath,
		FFmpegCodec:        ffmpegCodec,
		FFmpegPixelFormat:  ffmpegPixFmt,
		EncodeTimeout:      encodeTimeout,
		LogHealthChecks:    logHealthChecks,
	}

	// Missing video file degrades streaming only, so warn rather than fail.
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("VIDEO FILE")
	logging.Info("------------------------------------------------------------")
	if info, err := os.Stat(videoPath); err != nil {
		logging.Warn("  Video file not accessible: %v", err)
		logging.Warn("  Streaming requests will fail until %s exists", videoPath)
	} else if info.IsDir() {
		logging.Warn("  VIDEO_PATH points at a directory, streaming requests will fail")
	} else {
		logging.Info("  [OK] %s (%d bytes)", videoPath, info.Size())
	}

	return config, nil
}

func orInferred(contentType string) string {
	if contentType == "" {
		return "(inferred from file extension)"
	}
	return contentType
}

// LogEncoderInit probes the configured encoder and logs the result. An
// unavailable encoder degrades video creation but does not stop startup;
// the handlers re-probe per request so the service recovers once the binary
// is installed.
func LogEncoderInit(config *Config, inv *encoder.Invoker) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("ENCODER INITIALIZATION")
	logging.Info("------------------------------------------------------------")

	if !inv.Available() {
		logging.Warn("  Encoder %q not found in PATH", config.FFmpegPath)
		logging.Warn("  Video creation requests will fail until it is installed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if version, err := inv.Version(ctx); err != nil {
		logging.Warn("  Encoder version check failed: %v", err)
	} else {
		logging.Info("  [OK] %s", version)
	}
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			// Route might not have methods specified
			methods = []string{"*"}
		}

		name := route.GetName()

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   name,
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes dynamically
func LogHTTPRoutes(router *mux.Router, logHealthChecks bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("HTTP SERVER SETUP")
	logging.Info("------------------------------------------------------------")

	if logging.IsDebugEnabled() {
		routes, err := GetRoutes(router)
		if err != nil {
			logging.Warn("error walking routes: %v", err)
		}

		logging.Debug("  Registered routes (%d total):", len(routes))

		sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
		for _, route := range routes {
			logging.Debug("    %-6s %s", route.Method, route.Path)
		}
	}

	logging.Info("  HTTP logging enabled")
	if logHealthChecks {
		logging.Info("    Health check logging: ON")
	} else {
		logging.Info("    Health check logging: OFF (set LOG_HEALTH_CHECKS=true to enable)")
	}
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Host            string
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Application:   http://%s:%s", config.Host, config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://%s:%s/metrics", config.Host, config.MetricsPort)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

// Helper functions

func printBanner() {
	banner := `
------------------------------------------------------------
 _    ___     __             _____ __
| |  / (_)___/ /__  ____    / ___// /_________  ____ _____ ___  ___  _____
| | / / / __  / _ \/ __ \   \__ \/ __/ ___/ _ \/ __ '/ __ '__ \/ _ \/ ___/
| |/ / / /_/ /  __/ /_/ /  ___/ / /_/ /  /  __/ /_/ / / / / / /  __/ /
|___/_/\__,_/\___/\____/  /____/\__/_/   \___/\__,_/_/ /_/ /_/\___/_/

------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		logging.Info("  (Container CPU limit detected)")
	}

	if logging.IsDebugEnabled() {
		logging.Debug("  Goroutines:      %d", runtime.NumGoroutine())

		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}

		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logging.Warn("Invalid numeric value for %s: %q, using default: %g", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logging.Warn("Invalid duration value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
