// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package ilistotel

import (
	"time"

	"go.uber.org/zap"
)

// loggedExec runs op, logging its start and completion at debug level and
// its duration. It does not recover: if op panics, the panic propagates
// unchanged and neither the completion line nor any error-level line is
// logged.
func loggedExec(operationName string, op func()) {
	logger := zap.L()
	logger.Debug("Starting exclusive operation",
		zap.String("operation", operationName),
		zap.String("component", "ilistotel"))

	start := time.Now()
	op()
	duration := time.Since(start)

	logger.Debug("Exclusive operation completed",
		zap.String("operation", operationName),
		zap.String("component", "ilistotel"),
		zap.Duration("duration", duration))
}
