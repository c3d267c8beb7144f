package main

// This file contains the go:generate command for building the Windows
// metadata resources. Run `go generate` in this directory to regenerate
// the resource object linked into Windows builds.

//go:generate go run gen_version.go
