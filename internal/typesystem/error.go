package typesystem

import "fmt"

// UnresolvedGenericError indicates a generic in a return type that no
// argument position bound.
type UnresolvedGenericError struct {
	Name string
	In   Type
}

func (e *UnresolvedGenericError) Error() string {
	return fmt.Sprintf("generic %s in return type %s is not bound by any argument", e.Name, e.In)
}
