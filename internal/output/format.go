package output

// OutputFormat specifies how the transform command prints its result.
type OutputFormat string

const (
	// FormatCode prints the transformed source only (plus CSS with --css).
	FormatCode OutputFormat = "code"

	// FormatJSON prints a JSON document with code, CSS and warnings.
	FormatJSON OutputFormat = "json"

	// FormatYAML prints the same document as YAML.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatCode, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"code", "json", "yaml"}
}
