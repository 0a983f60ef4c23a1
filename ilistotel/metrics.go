// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilistotel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
)

// metricsExec records a count and a duration histogram for op, named
// metricName+".count" and metricName+".duration", both on a meter named
// after the package so dashboards can group exclusive-mode list operations
// together.
func metricsExec(ctx context.Context, metricName string, op func()) {
	meter := otel.GetMeterProvider().Meter("ilistotel")

	counter, _ := meter.Int64Counter(metricName + ".count")
	duration, _ := meter.Float64Histogram(metricName + ".duration")

	counter.Add(ctx, 1)

	start := time.Now()
	op()

	duration.Record(ctx, time.Since(start).Seconds())
}
