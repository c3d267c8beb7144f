package versionstamp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/josephspurrier/goversioninfo"
)

// ResourceInfo maps an extracted version and descriptor metadata onto the
// goversioninfo structures used to build native Windows resources. It
// fails when the version has non-numeric components (notably the
// UnknownVersion sentinel), since the binary resource format only holds
// numbers.
func ResourceInfo(version string, parts []string, meta Metadata) (*goversioninfo.VersionInfo, error) {
	tuple, ok := NumericTuple(parts)
	if !ok {
		return nil, fmt.Errorf("version %q has non-numeric components", version)
	}
	fv := goversioninfo.FileVersion{
		Major: tuple[0],
		Minor: tuple[1],
		Patch: tuple[2],
		Build: tuple[3],
	}
	vi := &goversioninfo.VersionInfo{
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion:    fv,
			ProductVersion: fv,
			FileFlagsMask:  "3f",
			FileFlags:      "00",
			FileOS:         "040004",
			FileType:       "01",
			FileSubType:    "00",
		},
		StringFileInfo: goversioninfo.StringFileInfo{
			Comments:         meta.Comments,
			CompanyName:      meta.CompanyName,
			FileDescription:  meta.FileDescription,
			FileVersion:      version,
			InternalName:     meta.InternalName,
			LegalCopyright:   meta.LegalCopyright,
			OriginalFilename: meta.OriginalFilename,
			ProductName:      meta.ProductName,
			ProductVersion:   version,
		},
		VarFileInfo: goversioninfo.VarFileInfo{
			Translation: goversioninfo.Translation{
				LangID:    0x0409, // US English
				CharsetID: 0x04B0, // Unicode
			},
		},
	}
	return vi, nil
}

// WriteSyso compiles vi into a .syso resource object for arch ("386",
// "amd64", "arm" or "arm64"). Dropping the file next to a main package is
// enough for the Go linker to embed it into Windows builds.
func WriteSyso(vi *goversioninfo.VersionInfo, path, arch string) error {
	vi.Build()
	vi.Walk()
	if err := vi.WriteSyso(path, arch); err != nil {
		return fmt.Errorf("write syso %s: %w", path, err)
	}
	return nil
}

// jsonTranslation spells LangID/CharsetID as the 4-digit hex strings the
// goversioninfo CLI expects in its configuration file.
type jsonTranslation struct {
	LangID    string `json:"LangID"`
	CharsetID string `json:"CharsetID"`
}

type jsonConfig struct {
	FixedFileInfo  goversioninfo.FixedFileInfo  `json:"FixedFileInfo"`
	StringFileInfo goversioninfo.StringFileInfo `json:"StringFileInfo"`
	VarFileInfo    struct {
		Translation jsonTranslation `json:"Translation"`
	} `json:"VarFileInfo"`
	IconPath string `json:"IconPath,omitempty"`
}

// WriteJSON writes vi in goversioninfo's JSON configuration format so
// builds that prefer running the goversioninfo CLI themselves can consume
// the extracted version.
func WriteJSON(vi *goversioninfo.VersionInfo, path string) error {
	cfg := jsonConfig{
		FixedFileInfo:  vi.FixedFileInfo,
		StringFileInfo: vi.StringFileInfo,
		IconPath:       vi.IconPath,
	}
	cfg.VarFileInfo.Translation = jsonTranslation{
		LangID:    fmt.Sprintf("%04X", uint16(vi.VarFileInfo.Translation.LangID)),
		CharsetID: fmt.Sprintf("%04X", uint16(vi.VarFileInfo.Translation.CharsetID)),
	}
	data, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
