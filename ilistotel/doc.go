// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package ilistotel provides OpenTelemetry and zap instrumentation for
// exclusive-mode operations on a guarded.List: RemoveNode, RemoveIf,
// Splice, and Clear. Shared-mode pushes are deliberately left
// uninstrumented; they are the hot path and the library favors letting
// callers instrument push sites themselves if they need to.
package ilistotel
