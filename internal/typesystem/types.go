package typesystem

import (
	"fmt"

	"github.com/EthanDenny/flip/internal/config"
)

// Type is the closed set of types: TInt, TBool, TNone, TFunc, TList and
// TGeneric. TFunc and TList are structural wrappers; TGeneric is a
// placeholder that only ever gets a binding inside one unification.
type Type interface {
	String() string
	isType()
}

type TInt struct{}

type TBool struct{}

type TNone struct{}

// TFunc is the type of a user function's result. It wraps the declared
// return type and is transparent to unification.
type TFunc struct {
	Return Type
}

type TList struct {
	Elem Type
}

type TGeneric struct {
	Name string
}

func (TInt) isType()     {}
func (TBool) isType()    {}
func (TNone) isType()    {}
func (TFunc) isType()    {}
func (TList) isType()    {}
func (TGeneric) isType() {}

func (TInt) String() string  { return config.IntTypeName }
func (TBool) String() string { return config.BoolTypeName }
func (TNone) String() string { return config.NoneTypeName }

func (t TFunc) String() string {
	return fmt.Sprintf("%s(%s)", config.FnTypeName, t.Return)
}

func (t TList) String() string {
	return "[" + t.Elem.String() + "]"
}

func (t TGeneric) String() string {
	return t.Name
}

// Convenience values for the base types.
var (
	Int  Type = TInt{}
	Bool Type = TBool{}
	None Type = TNone{}
)

func List(elem Type) Type {
	return TList{Elem: elem}
}

func Func(ret Type) Type {
	return TFunc{Return: ret}
}

func Generic(name string) Type {
	return TGeneric{Name: name}
}

// UnwrapFn strips one TFunc layer.
func UnwrapFn(t Type) Type {
	if fn, ok := t.(TFunc); ok {
		return fn.Return
	}
	return t
}

// Equal reports structural equality.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case TInt:
		_, ok := b.(TInt)
		return ok
	case TBool:
		_, ok := b.(TBool)
		return ok
	case TNone:
		_, ok := b.(TNone)
		return ok
	case TFunc:
		bf, ok := b.(TFunc)
		return ok && Equal(a.Return, bf.Return)
	case TList:
		bl, ok := b.(TList)
		return ok && Equal(a.Elem, bl.Elem)
	case TGeneric:
		bg, ok := b.(TGeneric)
		return ok && a.Name == bg.Name
	}
	return false
}

// IsList reports whether values of t are list handles at runtime.
func IsList(t Type) bool {
	_, ok := UnwrapFn(t).(TList)
	return ok
}

// Names returns the type names of ts, for diagnostics.
func Names(ts []Type) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return names
}
