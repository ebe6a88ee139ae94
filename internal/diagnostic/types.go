package diagnostic

// Diagnostic codes reported while building a catalogue.
const (
	CodeDuplicateName = "duplicate_name"
	CodeEmptyMap      = "empty_map"
	CodeRenderFailed  = "render_failed"
	CodeWriteFailed   = "write_failed"
	CodeInterrupted   = "interrupted"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Path identifies which key path this relates to (if any).
	Path string
	// Related lists other key paths involved, e.g. the other side of a name collision.
	Related []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, path string, related ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, path, related))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, path string, related ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, path, related))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, path string, related ...string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, path, related))
}

func newDiagnostic(severity Severity, code, message, path string, related []string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Path:     path,
		Related:  related,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// ByCode returns the diagnostics with the given code, in severity order.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var res []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			res = append(res, diag)
		}
	}

	return res
}
