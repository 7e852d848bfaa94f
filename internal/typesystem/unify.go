package typesystem

// Subst maps generic names to the concrete types bound during one
// unification. A Subst is created per call site and discarded afterwards;
// it is never stored on a Type or a Symbol.
type Subst map[string]Type

// Unify matches an argument type t1 against a goal type t2, extending s
// with generic bindings. The first occurrence of a generic binds it; every
// later occurrence within the same Subst must be equal to that binding.
// A goal generic facing an argument generic of another name binds to it,
// so placeholders of a generic caller flow into its callees.
func Unify(t1, t2 Type, s Subst) bool {
	if g, ok := t2.(TGeneric); ok {
		if a, ok := t1.(TGeneric); ok && a.Name == g.Name {
			return true
		}
		return bind(g, t1, s)
	}

	switch a := t1.(type) {
	case TInt:
		if _, ok := t2.(TInt); ok {
			return true
		}
	case TBool:
		if _, ok := t2.(TBool); ok {
			return true
		}
	case TNone:
		if _, ok := t2.(TNone); ok {
			return true
		}
	case TGeneric:
		return bind(a, t2, s)
	case TList:
		if b, ok := t2.(TList); ok {
			return Unify(a.Elem, b.Elem, s)
		}
	}

	_, fn1 := t1.(TFunc)
	_, fn2 := t2.(TFunc)
	if fn1 || fn2 {
		return Unify(UnwrapFn(t1), UnwrapFn(t2), s)
	}

	return false
}

func bind(g TGeneric, t Type, s Subst) bool {
	bound, ok := s[g.Name]
	if !ok {
		s[g.Name] = t
		return true
	}
	return Equal(UnwrapFn(bound), UnwrapFn(t))
}

// UnifyAll pairs args with goals under a fresh Subst. It fails on arity
// mismatch or on the first pair that does not unify.
func UnifyAll(args, goals []Type) (Subst, bool) {
	if len(args) != len(goals) {
		return nil, false
	}
	s := make(Subst)
	for i := range args {
		if !Unify(args[i], goals[i], s) {
			return nil, false
		}
	}
	return s, true
}

// BindPositional walks each declared parameter type against the actual
// argument type in the same position, descending through matching list
// layers, and records the first concrete type seen for each generic.
func BindPositional(params, args []Type) Subst {
	s := make(Subst)
	for i := 0; i < len(params) && i < len(args); i++ {
		param := UnwrapFn(params[i])
		arg := UnwrapFn(args[i])
		for {
			pl, pok := param.(TList)
			al, aok := arg.(TList)
			if pok && aok {
				param, arg = pl.Elem, al.Elem
				continue
			}
			if g, ok := param.(TGeneric); ok {
				if _, seen := s[g.Name]; !seen {
					s[g.Name] = arg
				}
			}
			break
		}
	}
	return s
}

// Substitute replaces generics in t with their bindings in s, descending
// through list and function layers.
func Substitute(t Type, s Subst) (Type, error) {
	return substitute(t, s, t)
}

func substitute(t Type, s Subst, root Type) (Type, error) {
	switch typ := t.(type) {
	case TList:
		elem, err := substitute(typ.Elem, s, root)
		if err != nil {
			return nil, err
		}
		return TList{Elem: elem}, nil
	case TFunc:
		ret, err := substitute(typ.Return, s, root)
		if err != nil {
			return nil, err
		}
		return TFunc{Return: ret}, nil
	case TGeneric:
		bound, ok := s[typ.Name]
		if !ok {
			return nil, &UnresolvedGenericError{Name: typ.Name, In: root}
		}
		return bound, nil
	}
	return t, nil
}
