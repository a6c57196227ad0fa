package main

import (
	"runtime"

	"github.com/alnah/go-mixedmd/internal/config"
)

// resolvePoolSize determines the number of conversion workers.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// One worker per CPU, as adjusted by automaxprocs for container quotas.
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > config.MaxWorkers {
		return config.MaxWorkers
	}
	return n
}
