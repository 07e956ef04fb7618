package compiler

import (
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

// Group joins evaluators into one whose output is the trailing-axis
// concatenation of the members' outputs, in order. Every member receives the
// same inputs. A single member is still concatenated.
func Group(evaluators []*domain.Evaluator) (*domain.Evaluator, error) {
	if len(evaluators) == 0 {
		return nil, domain.ErrEmptyGroup
	}
	members := make([]*domain.Evaluator, len(evaluators))
	copy(members, evaluators)

	return domain.NewGroupEvaluator(members, func(in domain.Inputs) (domain.Array, error) {
		outs := make([]domain.Array, len(members))
		for i, m := range members {
			out, err := m.Eval(in)
			if err != nil {
				return domain.Array{}, zerr.With(err, "output", i)
			}
			outs[i] = out
		}
		return domain.Concat(outs)
	}), nil
}
