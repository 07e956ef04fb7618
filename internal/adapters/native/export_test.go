package native

import "github.com/j3din00b/modulus-sym/internal/core/domain"

// ProgramSize returns the number of registers expr lowers to.
func ProgramSize(expr domain.Expr, args []string) (int, error) {
	p, err := lower(expr, args)
	if err != nil {
		return 0, err
	}
	return len(p.prog), nil
}
