package interp

import "github.com/j3din00b/modulus-sym/internal/core/domain"

// Print renders e the way Compile does.
func Print(e domain.Expr, args []string) (string, error) {
	return newPrinter(args).program(e)
}
