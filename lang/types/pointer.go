package types

// Pointer is `&T`, the address of a T. Pointer arithmetic is unscaled:
// `p + n` adds n words to the address whatever Elem's size; indexing `p[i]`
// scales i by Elem.Size() words.
type Pointer struct {
	Elem Type
}

func (p Pointer) String() string { return "&" + p.Elem.String() }

func (p Pointer) Equal(o Type) bool {
	op, ok := o.(Pointer)
	return ok && p.Elem.Equal(op.Elem)
}

func (p Pointer) Size() int { return 1 }
