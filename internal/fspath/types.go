package fspath

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module.
type Local = string

// POSIX is a forward-slash delimited path representation. It is the format expected by functions in
// the path module and by io/fs file systems.
type POSIX = string

// Components is a path broken into its parts, ordered leaf-first: the deepest element comes first
// and the root (if any) comes last. A root component carries its trailing separator.
type Components []string
