package types

// Field is one member of a Struct, in declaration order.
type Field struct {
	Name   string
	Type   Type
	Offset int // word offset from the struct's base address
}

// Struct is a named aggregate type. Two Structs are Equal iff they share the
// same qualified Name; Cerium has no structural struct typing.
type Struct struct {
	Name   string
	Fields []Field
	Words  int // total size in words
}

func (s *Struct) String() string { return s.Name }

func (s *Struct) Equal(o Type) bool {
	os, ok := o.(*Struct)
	return ok && os.Name == s.Name
}

func (s *Struct) Size() int { return s.Words }

// Field looks up a field by name, returning ok=false if it doesn't exist.
func (s *Struct) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
