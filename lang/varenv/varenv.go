// Package varenv implements the variable environment: a per-function stacked
// scope structure used during code generation. It tracks active locals (by
// optional name and type), assigns them to machine registers/stack slots,
// and issues fresh labels.
//
// Ownership is strict LIFO, the same stack discipline as the teacher's
// resolver scope chain (lang/resolver/resolver.go's push/pop), generalized
// here from name resolution to register/slot allocation.
package varenv

import (
	"github.com/dolthub/swiss"

	"github.com/cerium-lang/cerium/lang/registry"
	"github.com/cerium-lang/cerium/lang/types"
)

// Local is one entry on the locals stack: an optional name (anonymous
// temporaries have none) and its type. Its storage index is its position on
// the locals stack: indices 0-6 map to registers R1-R7; indices 7 and above
// map to stack slots [idx-7].
type Local struct {
	Name string // "" for an anonymous temporary
	Type types.Type
}

// Env is the variable environment for a single function body.
type Env struct {
	globals *registry.Registry

	Params []Local

	locals  []Local
	maxSize int

	checkpoints []int
	names       *swiss.Map[string, []int] // name -> stack of live indices into locals

	nextLabel int
}

// New returns an Env for a function whose parameters are params, backed by
// the shared global registry.
func New(globals *registry.Registry, params []Local) *Env {
	e := &Env{
		globals: globals,
		Params:  params,
		names:   swiss.NewMap[string, []int](8),
	}
	return e
}

// Globals returns the shared read-only global registry.
func (e *Env) Globals() *registry.Registry { return e.globals }

// MaxSize is the high-water mark of the locals stack, the number of
// register/stack slots the function's frame must reserve.
func (e *Env) MaxSize() int { return e.maxSize }

// Push allocates a new local (named or anonymous) of the given type and
// returns its storage index.
func (e *Env) Push(name string, t types.Type) int {
	idx := len(e.locals)
	e.locals = append(e.locals, Local{Name: name, Type: t})
	if len(e.locals) > e.maxSize {
		e.maxSize = len(e.locals)
	}
	if name != "" {
		stack, _ := e.names.Get(name)
		e.names.Put(name, append(stack, idx))
	}
	return idx
}

// Pop drops the top local. Scopes use this indirectly through EndScope; it is
// not normally invoked directly.
func (e *Env) Pop() {
	last := len(e.locals) - 1
	l := e.locals[last]
	e.locals = e.locals[:last]
	if l.Name != "" {
		stack, _ := e.names.Get(l.Name)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			e.names.Delete(l.Name)
		} else {
			e.names.Put(l.Name, stack)
		}
	}
}

// Find returns the storage index and type of the innermost binding named
// name, searching locals (innermost first), then parameters, then globals.
func (e *Env) Find(name string) (idx int, t types.Type, isParam, isGlobal bool, ok bool) {
	if stack, found := e.names.Get(name); found && len(stack) > 0 {
		i := stack[len(stack)-1]
		return i, e.locals[i].Type, false, false, true
	}
	for i, p := range e.Params {
		if p.Name == name {
			return i, p.Type, true, false, true
		}
	}
	if t, found := e.globals.Lookup(name); found {
		return 0, t, false, true, true
	}
	return 0, nil, false, false, false
}

// BeginScope pushes a checkpoint of the current locals-stack depth.
func (e *Env) BeginScope() {
	e.checkpoints = append(e.checkpoints, len(e.locals))
}

// EndScope truncates the locals stack back to the depth recorded by the
// matching BeginScope. This truncates the locals stack itself, not the
// checkpoint stack — the reverse of what one branch of the reference
// implementation this environment is modeled on did.
func (e *Env) EndScope() {
	last := len(e.checkpoints) - 1
	depth := e.checkpoints[last]
	e.checkpoints = e.checkpoints[:last]
	for len(e.locals) > depth {
		e.Pop()
	}
}

// NextLabel returns a fresh, strictly increasing label index for this
// function.
func (e *Env) NextLabel() int {
	l := e.nextLabel
	e.nextLabel++
	return l
}

// StorageIndex maps a local's stack index to its register (true) or stack
// slot (false) position. Indices 0-6 are registers R1-R7; 7+ are stack slots
// at [idx-7].
func StorageIndex(idx int) (slot int, isRegister bool) {
	if idx < 7 {
		return idx, true
	}
	return idx - 7, false
}
