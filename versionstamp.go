// Package versionstamp generates version-resource artifacts from a
// project's version-declaration file.
//
// A version-declaration file is a plain text file carrying a line such as
//
//	__version__ = '1.2.3'
//
// versionstamp extracts the quoted value, normalizes it into the 4-part
// numeric form native packaging tools expect, and renders a VSVersionInfo
// descriptor embedding it. It can additionally compile the same metadata
// into a Windows .syso resource object via goversioninfo.
package versionstamp

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Default paths and identifier, matching the layout this tool grew up in.
const (
	DefaultInput      = "__version__.py"
	DefaultOutput     = "version.txt"
	DefaultIdentifier = "__version__"
)

// UnknownVersion is substituted when the declaration file contains no
// recognizable version assignment. The run still produces a descriptor so
// the build keeps moving; the resulting file is of course not something a
// packaging tool will accept, which is the operator's cue to fix the
// declaration file.
const UnknownVersion = "Unknown"

// Generator produces version-resource artifacts from a single
// version-declaration file. Use New to get one with working defaults.
type Generator struct {
	// Input is the path of the version-declaration file.
	Input string
	// Output is the path the descriptor is written to, overwriting any
	// existing file.
	Output string
	// Identifier is the left-hand side of the assignment to search for.
	Identifier string
	// Metadata carries optional string-table entries for the descriptor.
	Metadata Metadata

	// Console receives the operator-visible output: the rendered descriptor
	// read back from the output path, and the completion notice.
	Console io.Writer

	Log zerolog.Logger

	// ReadFile and WriteFile default to the os package equivalents. Tests
	// swap them out to run the pipeline without touching the filesystem.
	ReadFile  func(name string) ([]byte, error)
	WriteFile func(name string, data []byte) error
}

// New returns a Generator wired to the default paths, stdout and the
// real filesystem.
func New() *Generator {
	return &Generator{
		Input:      DefaultInput,
		Output:     DefaultOutput,
		Identifier: DefaultIdentifier,
		Console:    os.Stdout,
		Log:        zerolog.Nop(),
		ReadFile:   os.ReadFile,
		WriteFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
	}
}

// Result reports what a Generate run produced.
type Result struct {
	// Version is the extracted version string, or UnknownVersion when no
	// assignment matched.
	Version string
	// Found reports whether the identifier actually matched; it
	// distinguishes "no version declared" from a version that literally
	// equals the sentinel.
	Found bool
	// Components holds the normalized, zero-padded version components.
	Components []string
	// Output is the path the descriptor was written to.
	Output string
}

// Generate runs the whole pipeline: read the declaration file, extract the
// version (falling back to UnknownVersion), normalize it, render the
// descriptor and write it out, then read the artifact back and echo it to
// the console.
//
// A missing or unreadable input file is fatal and leaves any existing
// output file untouched. A failed extraction is not: the sentinel is
// substituted and the run proceeds.
func (g *Generator) Generate() (*Result, error) {
	src, err := g.ReadFile(g.Input)
	if err != nil {
		return nil, fmt.Errorf("read version declaration %s: %w", g.Input, err)
	}

	version, found := Extract(src, g.Identifier)
	if !found {
		version = UnknownVersion
		g.Log.Warn().
			Str("identifier", g.Identifier).
			Str("input", g.Input).
			Msg("no version assignment found, substituting sentinel")
	}
	g.Log.Info().Str("version", version).Msg("extracted version")
	if found && !IsSemver(version) {
		g.Log.Warn().Str("version", version).Msg("version is not valid semver")
	}

	parts := Components(version)
	desc := Descriptor{
		Version:  version,
		Tuple:    Tuple(parts),
		Metadata: g.Metadata,
	}
	rendered, err := desc.Render()
	if err != nil {
		return nil, fmt.Errorf("render descriptor: %w", err)
	}

	if err := g.WriteFile(g.Output, rendered); err != nil {
		return nil, fmt.Errorf("write %s: %w", g.Output, err)
	}

	// Echo the artifact as it exists on disk rather than the in-memory
	// copy, so a failed or torn write is visible to the operator.
	written, err := g.ReadFile(g.Output)
	if err != nil {
		return nil, fmt.Errorf("read back %s: %w", g.Output, err)
	}
	fmt.Fprint(g.Console, string(written))
	fmt.Fprintf(g.Console, "%s created successfully\n", g.Output)

	return &Result{
		Version:    version,
		Found:      found,
		Components: parts,
		Output:     g.Output,
	}, nil
}
