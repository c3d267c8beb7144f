package versionstamp

import (
	"bytes"
	"text/template"
)

// Metadata carries the optional string-table entries embedded alongside
// the version fields. Empty fields are left out of the descriptor.
type Metadata struct {
	Comments         string `yaml:"comments"`
	CompanyName      string `yaml:"company_name"`
	FileDescription  string `yaml:"file_description"`
	InternalName     string `yaml:"internal_name"`
	LegalCopyright   string `yaml:"legal_copyright"`
	OriginalFilename string `yaml:"original_filename"`
	ProductName      string `yaml:"product_name"`
}

// Descriptor is the data rendered into the VSVersionInfo text block
// consumed by executable-packaging tools.
type Descriptor struct {
	// Version is the extracted version string, embedded verbatim in the
	// FileVersion and ProductVersion string fields.
	Version string
	// Tuple is the comma-joined normalized component list used for
	// filevers and prodvers.
	Tuple    string
	Metadata Metadata
}

type stringEntry struct {
	Key, Value string
}

// Strings returns the string-table entries in their fixed emission order.
// FileVersion and ProductVersion are always present; metadata entries
// only when set. The order is stable so identical input yields identical
// output bytes.
func (d Descriptor) Strings() []stringEntry {
	m := d.Metadata
	var entries []stringEntry
	add := func(key, value string) {
		if value != "" {
			entries = append(entries, stringEntry{key, value})
		}
	}
	add("Comments", m.Comments)
	add("CompanyName", m.CompanyName)
	add("FileDescription", m.FileDescription)
	entries = append(entries, stringEntry{"FileVersion", d.Version})
	add("InternalName", m.InternalName)
	add("LegalCopyright", m.LegalCopyright)
	add("OriginalFilename", m.OriginalFilename)
	add("ProductName", m.ProductName)
	entries = append(entries, stringEntry{"ProductVersion", d.Version})
	return entries
}

// The fixed file info constants (mask, flags, OS, fileType, subtype, date)
// and the '040904B0' string table key (US English, Unicode) are required
// verbatim by the consuming packaging tool.
const descriptorText = `# UTF-8
#
# For more details about fixed file info 'ffi' see:
# https://learn.microsoft.com/windows/win32/menurc/vs-versioninfo
VSVersionInfo(
  ffi=FixedFileInfo(
    filevers=({{.Tuple}}),
    prodvers=({{.Tuple}}),
    mask=0x3f,
    flags=0x0,
    OS=0x40004,
    fileType=0x1,
    subtype=0x0,
    date=(0, 0)
    ),
  kids=[
    StringFileInfo(
      [
      StringTable(
        u'040904B0',
        [{{range $i, $s := .Strings}}{{if $i}},
        {{end}}StringStruct(u'{{$s.Key}}', u'{{$s.Value}}'){{end}}])
      ]),
    VarFileInfo([VarStruct(u'Translation', [1033, 1200])])
  ]
)
`

var descriptorTemplate = template.Must(template.New("descriptor").Parse(descriptorText))

// Render produces the descriptor text as UTF-8 bytes. Rendering is
// deterministic: the same Descriptor always yields the same bytes.
func (d Descriptor) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := descriptorTemplate.Execute(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
