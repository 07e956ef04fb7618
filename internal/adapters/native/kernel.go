package native

import (
	"math"
	"runtime"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// kernel evaluates a program over batches, one chunk of rows at a time.
type kernel struct {
	prog  *program
	arity int
	chunk int
}

func (k *kernel) Arity() int { return k.arity }

func (k *kernel) Outputs() int { return len(k.prog.outputs) }

// Call evaluates the program for every element of the batch. Chunks run concurrently.
func (k *kernel) Call(v domain.Array) ([]domain.Array, error) {
	shape := v.Shape()
	if k.arity > 1 {
		if v.NDim() == 0 || shape[len(shape)-1] != k.arity {
			err := zerr.With(domain.ErrShapeMismatch, "arity", k.arity)
			return nil, zerr.With(err, "shape", shape)
		}
		shape = shape[:len(shape)-1]
	}
	values := v.AsFloat().Floats()

	n := 1
	for _, d := range shape {
		n *= d
	}
	outs := make([][]float64, len(k.prog.outputs))
	for i := range outs {
		outs[i] = make([]float64, n)
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for lo := 0; lo < n; lo += k.chunk {
		hi := min(lo+k.chunk, n)
		g.Go(func() error {
			k.run(values, lo, hi, outs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]domain.Array, len(outs))
	for i, data := range outs {
		a, err := domain.NewArray(shape, data)
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

// run evaluates rows [lo, hi) into outs.
func (k *kernel) run(values []float64, lo, hi int, outs [][]float64) {
	width := hi - lo
	regs := make([][]float64, len(k.prog.prog))
	stride := max(k.arity, 1)

	for r, in := range k.prog.prog {
		dst := make([]float64, width)
		switch in.op {
		case opLoad:
			for i := range width {
				dst[i] = values[(lo+i)*stride+in.col]
			}
		case opConst:
			for i := range dst {
				dst[i] = in.val
			}
		case opAdd:
			a, b := regs[in.in[0]], regs[in.in[1]]
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
		case opMul:
			a, b := regs[in.in[0]], regs[in.in[1]]
			for i := range dst {
				dst[i] = a[i] * b[i]
			}
		case opPow:
			a, b := regs[in.in[0]], regs[in.in[1]]
			for i := range dst {
				dst[i] = math.Pow(a[i], b[i])
			}
		case opCall:
			operands := make([]float64, len(in.in))
			for i := range dst {
				for j, src := range in.in {
					operands[j] = regs[src][i]
				}
				dst[i] = in.fn.Apply(operands...)
			}
		}
		regs[r] = dst
	}

	for o, r := range k.prog.outputs {
		copy(outs[o][lo:hi], regs[r])
	}
}
