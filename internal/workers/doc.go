/*
Package workers determines worker pool sizes that respect container CPU
limits.

In containerized deployments the number of usable CPUs is often constrained
by cgroups. Go 1.19+ sets GOMAXPROCS from the container CPU limit, while
runtime.NumCPU() still reports the host count, so sizing pools from NumCPU
oversubscribes the container. This package sizes pools from GOMAXPROCS
instead.

Video encoding is CPU-bound, so the encode pool uses one worker per
available CPU:

	concurrency := workers.ForCPU(8) // at most 8 concurrent encodes

ForCPU and the underlying Count accept a cap (0 for no cap), and both honor
an explicit ENCODE_WORKERS environment variable override:

	env:
	- name: ENCODE_WORKERS
	  value: "2"

All functions are safe for concurrent use.
*/
package workers
