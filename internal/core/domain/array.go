package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// DType is the element type of an Array.
type DType uint8

const (
	// DTypeFloat arrays hold float64 elements.
	DTypeFloat DType = iota
	// DTypeBool arrays hold boolean elements.
	DTypeBool
)

func (d DType) String() string {
	if d == DTypeBool {
		return "bool"
	}
	return "float64"
}

// Array is a dense row-major n-dimensional array of float64 or bool elements.
// Arrays are immutable once built; operations return new arrays.
type Array struct {
	shape []int
	dtype DType
	f     []float64
	b     []bool
}

// NewArray wraps data as a float array of the given shape.
func NewArray(shape []int, data []float64) (Array, error) {
	if size(shape) != len(data) {
		return Array{}, shapeError(shape, len(data))
	}
	return Array{shape: slices.Clone(shape), dtype: DTypeFloat, f: data}, nil
}

// NewBoolArray wraps data as a bool array of the given shape.
func NewBoolArray(shape []int, data []bool) (Array, error) {
	if size(shape) != len(data) {
		return Array{}, shapeError(shape, len(data))
	}
	return Array{shape: slices.Clone(shape), dtype: DTypeBool, b: data}, nil
}

func shapeError(shape []int, n int) error {
	err := zerr.With(ErrShapeMismatch, "shape", formatShape(shape))
	return zerr.With(err, "elements", n)
}

// Column builds an (N, 1) float array.
func Column(values ...float64) Array {
	return Array{shape: []int{len(values), 1}, dtype: DTypeFloat, f: slices.Clone(values)}
}

// BoolColumn builds an (N, 1) bool array.
func BoolColumn(values ...bool) Array {
	return Array{shape: []int{len(values), 1}, dtype: DTypeBool, b: slices.Clone(values)}
}

// Scalar builds a zero-dimensional float array.
func Scalar(v float64) Array {
	return Array{shape: []int{}, dtype: DTypeFloat, f: []float64{v}}
}

// Full returns a float array of the given shape with every element set to v.
func Full(shape []int, v float64) Array {
	data := make([]float64, size(shape))
	for i := range data {
		data[i] = v
	}
	return Array{shape: slices.Clone(shape), dtype: DTypeFloat, f: data}
}

// FullBool returns a bool array of the given shape with every element set to v.
func FullBool(shape []int, v bool) Array {
	data := make([]bool, size(shape))
	if v {
		for i := range data {
			data[i] = true
		}
	}
	return Array{shape: slices.Clone(shape), dtype: DTypeBool, b: data}
}

// Shape returns a copy of the array dimensions.
func (a Array) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a Array) NDim() int { return len(a.shape) }

// DType returns the element type.
func (a Array) DType() DType { return a.dtype }

// Size returns the number of elements held. The zero Array holds none.
func (a Array) Size() int {
	if a.dtype == DTypeBool {
		return len(a.b)
	}
	return len(a.f)
}

// Float returns element i of the flattened array. Bools read as 0 or 1.
func (a Array) Float(i int) float64 {
	if a.dtype == DTypeBool {
		if a.b[i] {
			return 1
		}
		return 0
	}
	return a.f[i]
}

// Bool returns element i of the flattened array. Floats read as true when non-zero.
func (a Array) Bool(i int) bool {
	if a.dtype == DTypeBool {
		return a.b[i]
	}
	return a.f[i] != 0
}

// Floats returns the flattened elements as float64. Bool arrays are promoted to 0 or 1.
func (a Array) Floats() []float64 {
	if a.dtype == DTypeFloat {
		return slices.Clone(a.f)
	}
	out := make([]float64, len(a.b))
	for i := range a.b {
		out[i] = a.Float(i)
	}
	return out
}

// Bools returns the flattened elements as bool.
func (a Array) Bools() []bool {
	if a.dtype == DTypeBool {
		return slices.Clone(a.b)
	}
	out := make([]bool, len(a.f))
	for i, v := range a.f {
		out[i] = v != 0
	}
	return out
}

// AsFloat returns a float array with the same shape, promoting bools to 0 or 1.
func (a Array) AsFloat() Array {
	if a.dtype == DTypeFloat {
		return a
	}
	return Array{shape: a.shape, dtype: DTypeFloat, f: a.Floats()}
}

// Reshape returns the same elements with a new shape of equal size.
func (a Array) Reshape(shape ...int) (Array, error) {
	if size(shape) != a.Size() {
		return Array{}, shapeError(shape, a.Size())
	}
	out := a
	out.shape = slices.Clone(shape)
	return out, nil
}

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteString(a.dtype.String())
	sb.WriteString(formatShape(a.shape))
	sb.WriteByte('[')
	for i := range a.Size() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.dtype == DTypeBool {
			sb.WriteString(strconv.FormatBool(a.b[i]))
		} else {
			sb.WriteString(strconv.FormatFloat(a.f[i], 'g', -1, 64))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
