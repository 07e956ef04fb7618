package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Canonical encodes the structure of e. Every node carries a type tag and
// names are quoted, so two trees share an encoding only when they are
// structurally equal. Numeric functions are encoded by identity.
func Canonical(e Expr) string {
	var b strings.Builder
	writeCanonical(&b, e)
	return b.String()
}

// Fingerprint is the xxhash of the canonical encoding. Structurally equal
// trees built separately share a fingerprint.
func Fingerprint(e Expr) uint64 {
	return xxhash.Sum64String(Canonical(e))
}

//nolint:cyclop // one case per expression type
func writeCanonical(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
		b.WriteString("nil")
	case *Symbol:
		b.WriteString("S")
		b.WriteString(strconv.Quote(n.Name()))
	case *Number:
		b.WriteString("N")
		b.WriteString(strconv.FormatUint(math.Float64bits(n.value), 16))
	case *Boolean:
		b.WriteString("B")
		b.WriteString(strconv.FormatBool(n.value))
	case *Sum:
		writeNode(b, "A", "", n.terms)
	case *Product:
		writeNode(b, "M", "", n.factors)
	case *Power:
		writeNode(b, "P", "", []Expr{n.base, n.exp})
	case *Call:
		writeNode(b, "C", strconv.Quote(n.name), n.args)
	case *Relational:
		writeNode(b, "R", strconv.Quote(string(n.op)), []Expr{n.lhs, n.rhs})
	case *Conditional:
		b.WriteString("W(")
		for i, p := range n.pieces {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, p.Value)
			b.WriteByte(':')
			writeCanonical(b, p.Cond)
		}
		b.WriteByte(')')
	case *Tuple:
		writeNode(b, "T", "", n.items)
	case *NumericFunc:
		b.WriteString("F")
		b.WriteString(strconv.Quote(n.name))
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(uint64(n.ID()), 10))
	default:
		b.WriteString("?")
		b.WriteString(strconv.Quote(e.String()))
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(uint64(e.ID()), 10))
	}
}

func writeNode(b *strings.Builder, tag, label string, args []Expr) {
	b.WriteString(tag)
	b.WriteString(label)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCanonical(b, a)
	}
	b.WriteByte(')')
}
