package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// BroadcastShapes returns the shape that every input shape broadcasts to.
// Dimensions are aligned from the right; a dimension of 1 stretches to match.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}
	out := make([]int, ndim)
	for i := range out {
		out[i] = 1
	}
	for _, s := range shapes {
		offset := ndim - len(s)
		for i, d := range s {
			cur := out[offset+i]
			switch {
			case cur == d || d == 1:
			case cur == 1:
				out[offset+i] = d
			default:
				err := zerr.With(ErrShapeMismatch, "left", formatShape(out))
				return nil, zerr.With(err, "right", formatShape(s))
			}
		}
	}
	return out, nil
}

// BroadcastTo materializes a with the given shape.
func (a Array) BroadcastTo(shape []int) (Array, error) {
	if slices.Equal(a.shape, shape) {
		return a, nil
	}
	got, err := BroadcastShapes(a.shape, shape)
	if err != nil {
		return Array{}, err
	}
	if !slices.Equal(got, shape) {
		err := zerr.With(ErrShapeMismatch, "from", formatShape(a.shape))
		return Array{}, zerr.With(err, "to", formatShape(shape))
	}

	idx := broadcastIndices(a.shape, shape)
	if a.dtype == DTypeBool {
		data := make([]bool, len(idx))
		for i, j := range idx {
			data[i] = a.b[j]
		}
		return Array{shape: slices.Clone(shape), dtype: DTypeBool, b: data}, nil
	}
	data := make([]float64, len(idx))
	for i, j := range idx {
		data[i] = a.f[j]
	}
	return Array{shape: slices.Clone(shape), dtype: DTypeFloat, f: data}, nil
}

// broadcastIndices maps every flat index of dst to the flat index of src it reads.
func broadcastIndices(src, dst []int) []int {
	nd := len(dst)
	strides := make([]int, nd)
	stride := 1
	for i := len(src) - 1; i >= 0; i-- {
		if src[i] != 1 {
			strides[nd-len(src)+i] = stride
		}
		stride *= src[i]
	}

	n := size(dst)
	out := make([]int, n)
	counter := make([]int, nd)
	off := 0
	for flat := range n {
		out[flat] = off
		for d := nd - 1; d >= 0; d-- {
			counter[d]++
			off += strides[d]
			if counter[d] < dst[d] {
				break
			}
			off -= strides[d] * counter[d]
			counter[d] = 0
		}
	}
	return out
}

// Broadcast brings every array to their common shape.
func Broadcast(arrays ...Array) ([]Array, []int, error) {
	shapes := make([][]int, len(arrays))
	for i, a := range arrays {
		shapes[i] = a.shape
	}
	shape, err := BroadcastShapes(shapes...)
	if err != nil {
		return nil, nil, err
	}
	out := make([]Array, len(arrays))
	for i, a := range arrays {
		if out[i], err = a.BroadcastTo(shape); err != nil {
			return nil, nil, err
		}
	}
	return out, shape, nil
}

// Stack broadcasts the arrays together and joins them along a new trailing axis.
// The result is always a float array.
func Stack(arrays []Array) (Array, error) {
	if len(arrays) == 0 {
		return Array{}, zerr.With(ErrShapeMismatch, "op", "stack")
	}
	aligned, shape, err := Broadcast(arrays...)
	if err != nil {
		return Array{}, err
	}
	k := len(aligned)
	n := size(shape)
	data := make([]float64, n*k)
	for j, a := range aligned {
		for i := range n {
			data[i*k+j] = a.Float(i)
		}
	}
	return Array{shape: append(slices.Clone(shape), k), dtype: DTypeFloat, f: data}, nil
}

// Column returns the slice a[..., j] of an array whose trailing axis holds columns.
func (a Array) Column(j int) (Array, error) {
	if a.NDim() == 0 {
		return Array{}, zerr.With(ErrShapeMismatch, "op", "column")
	}
	k := a.shape[len(a.shape)-1]
	if j < 0 || j >= k {
		err := zerr.With(ErrShapeMismatch, "column", j)
		return Array{}, zerr.With(err, "shape", formatShape(a.shape))
	}
	lead := a.shape[:len(a.shape)-1]
	n := size(lead)
	if a.dtype == DTypeBool {
		data := make([]bool, n)
		for i := range n {
			data[i] = a.b[i*k+j]
		}
		return Array{shape: slices.Clone(lead), dtype: DTypeBool, b: data}, nil
	}
	data := make([]float64, n)
	for i := range n {
		data[i] = a.f[i*k+j]
	}
	return Array{shape: slices.Clone(lead), dtype: DTypeFloat, f: data}, nil
}

// Concat joins arrays along their trailing axis, in order.
// Leading dimensions are broadcast together. The result is a bool array only
// when every operand is bool; otherwise bools are promoted to 0 or 1.
func Concat(arrays []Array) (Array, error) {
	if len(arrays) == 0 {
		return Array{}, zerr.With(ErrShapeMismatch, "op", "concatenate")
	}

	leads := make([][]int, len(arrays))
	dtype := DTypeBool
	for i, a := range arrays {
		if a.NDim() == 0 {
			err := zerr.With(ErrShapeMismatch, "op", "concatenate")
			return Array{}, zerr.With(err, "operand", i)
		}
		leads[i] = a.shape[:a.NDim()-1]
		if a.dtype == DTypeFloat {
			dtype = DTypeFloat
		}
	}
	lead, err := BroadcastShapes(leads...)
	if err != nil {
		return Array{}, err
	}

	widths := make([]int, len(arrays))
	total := 0
	aligned := make([]Array, len(arrays))
	for i, a := range arrays {
		widths[i] = a.shape[a.NDim()-1]
		total += widths[i]
		if aligned[i], err = a.BroadcastTo(append(slices.Clone(lead), widths[i])); err != nil {
			return Array{}, err
		}
	}

	rows := size(lead)
	shape := append(slices.Clone(lead), total)
	if dtype == DTypeBool {
		data := make([]bool, 0, rows*total)
		for r := range rows {
			for i, a := range aligned {
				data = append(data, a.b[r*widths[i]:(r+1)*widths[i]]...)
			}
		}
		return Array{shape: shape, dtype: DTypeBool, b: data}, nil
	}
	data := make([]float64, 0, rows*total)
	for r := range rows {
		for i, a := range aligned {
			for c := range widths[i] {
				data = append(data, a.Float(r*widths[i]+c))
			}
		}
	}
	return Array{shape: shape, dtype: DTypeFloat, f: data}, nil
}
