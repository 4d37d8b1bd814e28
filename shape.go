// Package shape provides a runtime representation of the shape of a type
// so that generic operations can be written once and applied to any
// described value without per-type code.  A descriptor is a Type built
// from a closed algebra of shapes (unit, int, bool, list, lazy, function,
// tuple, record, sum); heterogeneous sub-structure (variant arguments,
// record fields, tuple elements) is uniformly encoded as a Seq walked in
// lockstep with a Schema.  Descriptors are immutable once built and are
// typically process-wide constants shared freely across goroutines.
//
// The dynamic side of the algebra pairs each descriptor with a Go value
// convention: unit values are Unit{}, ints are int64, bools are bool,
// lists are []any, lazy values are *Thunk, function values are any Go
// func (opaque to generic consumers), and tuple, record, and sum values
// are whatever the descriptor's closures agree on.
package shape

// A Type describes the shape of the values it governs.  The set of
// implementations is closed: TypeOfUnit, TypeOfInt, TypeOfBool, TypeList,
// TypeLazy, TypeFunc, TypeTuple, TypeRecord, and TypeSum.
type Type interface {
	Kind() Kind
}

type Kind int

const (
	UnitKind Kind = iota
	IntKind
	BoolKind
	ListKind
	LazyKind
	FuncKind
	TupleKind
	RecordKind
	SumKind
)

func (k Kind) String() string {
	switch k {
	case UnitKind:
		return "unit"
	case IntKind:
		return "int"
	case BoolKind:
		return "bool"
	case ListKind:
		return "list"
	case LazyKind:
		return "lazy"
	case FuncKind:
		return "func"
	case TupleKind:
		return "tuple"
	case RecordKind:
		return "record"
	case SumKind:
		return "sum"
	}
	return "<unknown kind>"
}

// Unit is the value of the unit type.  It carries no information.
type Unit struct{}

type TypeOfUnit struct{}

func (t *TypeOfUnit) Kind() Kind {
	return UnitKind
}

type TypeOfInt struct{}

func (t *TypeOfInt) Kind() Kind {
	return IntKind
}

type TypeOfBool struct{}

func (t *TypeOfBool) Kind() Kind {
	return BoolKind
}

var (
	TypeUnit = &TypeOfUnit{}
	TypeInt  = &TypeOfInt{}
	TypeBool = &TypeOfBool{}
)
