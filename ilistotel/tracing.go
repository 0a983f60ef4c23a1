// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilistotel

import (
	"context"

	"go.opentelemetry.io/otel"
)

// tracedExec wraps op in a span named operationName under the ilistotel
// tracer, then runs metricsExec and loggedExec inside it so all three
// layers of instrumentation for a single call share one span.
func tracedExec(ctx context.Context, operationName string, op func()) {
	tracer := otel.Tracer("ilistotel")
	ctx, span := tracer.Start(ctx, operationName)
	defer span.End()

	metricsExec(ctx, operationName, func() {
		loggedExec(operationName, op)
	})
}
