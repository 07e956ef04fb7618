package compiler_test

import (
	"errors"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/engine/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func fixed(a domain.Array) *domain.Evaluator {
	return domain.NewEvaluator(domain.KindSymbolic, domain.BackendNative, func(domain.Inputs) (domain.Array, error) {
		return a, nil
	})
}

func TestGroup_ConcatenatesInOrder(t *testing.T) {
	a := fixed(domain.Column(1, 2, 3))
	b := fixed(domain.Column(10, 20, 30))

	g, err := compiler.Group([]*domain.Evaluator{a, b})
	require.NoError(t, err)
	assert.Equal(t, domain.KindGroup, g.Kind())
	assert.Equal(t, []*domain.Evaluator{a, b}, g.Members())

	out, err := g.Eval(domain.Inputs{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, out.Shape())

	first, err := out.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, first.Floats())
	second, err := out.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, second.Floats())
}

func TestGroup_SingleMemberIsConcatenated(t *testing.T) {
	g, err := compiler.Group([]*domain.Evaluator{fixed(domain.Column(1, 2))})
	require.NoError(t, err)

	out, err := g.Eval(domain.Inputs{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, out.Shape())

	g, err = compiler.Group([]*domain.Evaluator{fixed(domain.Scalar(1))})
	require.NoError(t, err)
	_, err = g.Eval(domain.Inputs{})
	assert.Error(t, err)
}

func TestGroup_MembersShareInputs(t *testing.T) {
	in := domain.Inputs{"x": domain.Column(1, 2)}
	seen := 0
	member := domain.NewEvaluator(domain.KindSymbolic, domain.BackendNative, func(got domain.Inputs) (domain.Array, error) {
		seen++
		assert.Equal(t, in, got)
		return got["x"], nil
	})

	g, err := compiler.Group([]*domain.Evaluator{member, member})
	require.NoError(t, err)
	_, err = g.Eval(in)
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
	assert.Len(t, in, 1)
}

func TestGroup_MemberErrorNamesOutput(t *testing.T) {
	failing := domain.NewEvaluator(domain.KindSymbolic, domain.BackendNative, func(domain.Inputs) (domain.Array, error) {
		return domain.Array{}, errors.New("boom")
	})

	g, err := compiler.Group([]*domain.Evaluator{fixed(domain.Column(1)), failing})
	require.NoError(t, err)

	_, err = g.Eval(domain.Inputs{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 1, zErr.Metadata()["output"])
}

func TestGroup_Empty(t *testing.T) {
	_, err := compiler.Group(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyGroup)
}
