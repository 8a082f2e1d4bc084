package types

// Function is the type of a function value: its parameter types in order and
// its return type (Unit if it declares none).
type Function struct {
	Params []Type
	Ret    Type
}

func (f *Function) String() string {
	s := "fn("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"
	if !IsUnit(f.Ret) {
		s += " -> " + f.Ret.String()
	}
	return s
}

func (f *Function) Equal(o Type) bool {
	of, ok := o.(*Function)
	if !ok || len(of.Params) != len(f.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equal(of.Params[i]) {
			return false
		}
	}
	if IsUnit(f.Ret) != IsUnit(of.Ret) {
		return false
	}
	return IsUnit(f.Ret) || f.Ret.Equal(of.Ret)
}

func (f *Function) Size() int { return 1 }
