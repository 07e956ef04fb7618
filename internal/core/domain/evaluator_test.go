package domain_test

import (
	"testing"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFallbackLabel(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   string
	}{
		{name: "construct", reason: domain.ConstructPiecewise, want: domain.ConstructPiecewise},
		{name: "unknown node", reason: domain.ConstructUnknown, want: domain.ConstructUnknown},
		{name: "special function", reason: domain.FuncDiracDelta, want: domain.FuncDiracDelta},
		{name: "elementwise function", reason: "cos", want: "cos"},
		{name: "sentinel message", reason: domain.ErrUndefinedSymbol.Error(), want: domain.ErrUndefinedSymbol.Error()},
		{name: "user function name", reason: "my_kernel", want: domain.ReasonOther},
		{name: "expression text", reason: "(x + y)**2", want: domain.ReasonOther},
		{name: "empty", reason: "", want: domain.ReasonOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FallbackLabel(tt.reason))
		})
	}
}
