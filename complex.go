package shape

// TypeList describes a list whose elements all have type Elem.  List
// values are represented as []any.
type TypeList struct {
	Elem Type
}

func NewList(elem Type) *TypeList {
	return &TypeList{Elem: elem}
}

func (t *TypeList) Kind() Kind {
	return ListKind
}

// TypeLazy describes a deferred value of type Elem.  Lazy values are
// represented as *Thunk.
type TypeLazy struct {
	Elem Type
}

func NewLazy(elem Type) *TypeLazy {
	return &TypeLazy{Elem: elem}
}

func (t *TypeLazy) Kind() Kind {
	return LazyKind
}

// TypeFunc describes a function from Param to Result.  Function values
// are opaque to generic consumers and are never invoked through this
// interface.
type TypeFunc struct {
	Param  Type
	Result Type
}

func NewFunc(param, result Type) *TypeFunc {
	return &TypeFunc{Param: param, Result: result}
}

func (t *TypeFunc) Kind() Kind {
	return FuncKind
}

// TypeTuple bridges a fixed-arity tuple type to the Seq encoding.
// Decompose turns a tuple value into one Seq entry per position, in
// order, matching Schema; Recompose is its inverse.  The two must form
// a bijection.
type TypeTuple struct {
	Schema    Schema
	Decompose func(any) *Seq
	Recompose func(*Seq) any
}

func (t *TypeTuple) Kind() Kind {
	return TupleKind
}

// Pair is the value carrier for two-element tuples built with NewPair.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value carrier for three-element tuples built with
// NewTriple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// NewPair returns the tuple descriptor for Pair[A, B] values whose
// elements have types a and b.
func NewPair[A, B any](a, b Type) *TypeTuple {
	return &TypeTuple{
		Schema: Schema{a, b},
		Decompose: func(val any) *Seq {
			p := val.(Pair[A, B])
			return SeqOf(p.First, p.Second)
		},
		Recompose: func(s *Seq) any {
			first, s := s.Split()
			second, _ := s.Split()
			return Pair[A, B]{first.(A), second.(B)}
		},
	}
}

// NewTriple returns the tuple descriptor for Triple[A, B, C] values
// whose elements have types a, b, and c.
func NewTriple[A, B, C any](a, b, c Type) *TypeTuple {
	return &TypeTuple{
		Schema: Schema{a, b, c},
		Decompose: func(val any) *Seq {
			t := val.(Triple[A, B, C])
			return SeqOf(t.First, t.Second, t.Third)
		},
		Recompose: func(s *Seq) any {
			first, s := s.Split()
			second, s := s.Split()
			third, _ := s.Split()
			return Triple[A, B, C]{first.(A), second.(B), third.(C)}
		},
	}
}
