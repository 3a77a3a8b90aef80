// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"
)

func TestNoopTracerStart(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracerStart")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}

	if span.SpanContext().IsValid() {
		t.Error("expected noop tracer to produce an invalid span context")
	}
}
