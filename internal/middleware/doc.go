// Package middleware provides HTTP middleware for the streaming service.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics with bounded label cardinality
//   - Configurable filtering for health check requests
package middleware
