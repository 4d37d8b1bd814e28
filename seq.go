package shape

// A Schema gives the type of each position of a Seq.  Its length and
// per-position types are an invariant shared with every Seq built
// against it.
type Schema []Type

// A Seq is an ordered sequence of values whose element types vary by
// position, described one-for-one by a Schema of equal length.  The
// empty sequence is nil.  A Seq is built structurally from Cons and
// consumed by walking it with Split in lockstep with its Schema; there
// is no indexed access.  This is the single encoding reused for variant
// arguments, bulk record-field values, and tuple elements.
type Seq struct {
	head any
	tail *Seq
}

func Cons(head any, tail *Seq) *Seq {
	return &Seq{head, tail}
}

// SeqOf builds a Seq holding vals in order.
func SeqOf(vals ...any) *Seq {
	var s *Seq
	for i := len(vals) - 1; i >= 0; i-- {
		s = Cons(vals[i], s)
	}
	return s
}

// Split returns the first value of s and the remainder of the sequence.
// Split must not be called on the empty sequence.
func (s *Seq) Split() (any, *Seq) {
	return s.head, s.tail
}

func (s *Seq) Len() int {
	var n int
	for ; s != nil; s = s.tail {
		n++
	}
	return n
}
