// Package metrics defines the Prometheus metrics exported by the service:
// HTTP request counters, streaming outcomes and byte counts, and encoder
// job lifecycle metrics.
package metrics
