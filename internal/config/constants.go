package config

// Version is the compiler version checked against the `requires` constraint
// of a project config.
const Version = "0.3.0"

const SourceFileExt = ".flip"

// Default output locations, relative to the project directory.
const (
	DefaultOutputPath    = "build/out.c"
	DefaultRuntimeHeader = "flip.h"
	DefaultCompiler      = "cc"
)

// MainFuncName is the entry point. It compiles to the host entry function
// instead of a closure factory.
const MainFuncName = "main"

// Generated name prefixes for the two artifacts of a user function.
const (
	FactoryPrefix = "fn_"
	EvalPrefix    = "eval_"
)

// Built-in type names
const (
	IntTypeName  = "Int"
	BoolTypeName = "Bool"
	NoneTypeName = "None"
	FnTypeName   = "Fn"
)

// Built-in function names
const (
	AddFuncName    = "+"
	SubFuncName    = "-"
	MulFuncName    = "*"
	DivFuncName    = "/"
	ModFuncName    = "mod"
	EqFuncName     = "=="
	NeqFuncName    = "!="
	GtFuncName     = ">"
	LtFuncName     = "<"
	GteFuncName    = ">="
	LteFuncName    = "<="
	AndFuncName    = "and"
	OrFuncName     = "or"
	NotFuncName    = "not"
	IfFuncName     = "if"
	EmptyFuncName  = "empty"
	LenFuncName    = "len"
	HeadFuncName   = "head"
	TailFuncName   = "tail"
	ConsFuncName   = "++"
	IsNullFuncName = "is_null"
)
