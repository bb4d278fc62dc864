// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("debug")
	if !l.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled")
	}
}

func TestInvalidLevelFallsBackToError(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be disabled on fallback")
	}
}
