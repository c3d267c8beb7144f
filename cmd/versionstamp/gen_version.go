//go:build ignore

// Generates the Windows resource object embedded into versionstamp.exe,
// using versionstamp itself so released binaries carry the same metadata
// shape the tool emits for other projects.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/icedream/versionstamp"
)

// getVersion attempts to get the version from git tags or defaults to "0.0.0.0"
func getVersion() string {
	// Try to get version from git describe
	cmd := exec.Command("git", "describe", "--tags", "--abbrev=0")
	output, err := cmd.Output()
	if err == nil {
		version := strings.TrimSpace(string(output))
		if version != "" {
			return strings.TrimPrefix(version, "v")
		}
	}

	// Try to get version from git tag --points-at HEAD
	cmd = exec.Command("git", "tag", "--points-at", "HEAD")
	output, err = cmd.Output()
	if err == nil {
		tags := strings.Fields(string(output))
		if len(tags) > 0 {
			return strings.TrimPrefix(tags[0], "v")
		}
	}

	// Default to dev version
	return "0.0.0.0"
}

func main() {
	version := getVersion()
	parts := versionstamp.Components(version)

	fmt.Fprintf(os.Stderr, "Generating Windows resource file with version: %s (%s)\n",
		version, versionstamp.Tuple(parts))

	vi, err := versionstamp.ResourceInfo(version, parts, versionstamp.Metadata{
		CompanyName:      "Carl Kittelberger",
		FileDescription:  "versionstamp",
		InternalName:     "versionstamp",
		LegalCopyright:   "Copyright (c) 2025 Carl Kittelberger",
		OriginalFilename: "versionstamp.exe",
		ProductName:      "versionstamp",
		Comments:         "Generates version-resource descriptors from version-declaration files",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building resource info: %v\n", err)
		os.Exit(1)
	}

	if err := versionstamp.WriteSyso(vi, "resource_windows_amd64.syso", "amd64"); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing resource object: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Successfully generated Windows resource file")
}
