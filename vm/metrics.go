package vm

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-checkpointvm/metrics"
)

const namespace = "vm"

var (
	verdicts = metrics.NewCounter(
		"verdicts",
		namespace,
		"number of script runs by exit code",
		[]string{"script", "code"},
	)
	consumedCycles = metrics.NewHistogramWithBuckets(
		"cycles",
		namespace,
		"cycles consumed by a script run",
		[]string{"script"},
		prometheus.ExponentialBuckets(1_000, 4, 10),
	)
	runDuration = metrics.NewHistogramWithBuckets(
		"duration_seconds",
		namespace,
		"duration of a script run",
		[]string{"script"},
		prometheus.ExponentialBuckets(0.0001, 2, 14),
	)
)
