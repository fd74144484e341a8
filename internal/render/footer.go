// =============================================================================
// Roster Printer - Footer Composition
// =============================================================================

package render

import "strings"

// FooterSegments selects which timestamp segments appear in the document
// footer. Segments are joined with ", "; when none is enabled the footer is
// omitted entirely.
type FooterSegments struct {
	// ShowPrintDate includes "printed <timestamp>".
	ShowPrintDate bool

	// ShowModifiedTime includes "data modified <timestamp>".
	ShowModifiedTime bool
}

// Footer returns a FooterFunc composing the enabled segments from the run
// metadata. The renderer takes the result at construction, keeping footer
// content a plain function of the metadata.
func Footer(segments FooterSegments) FooterFunc {
	return func(meta Metadata) string {
		var parts []string
		if segments.ShowPrintDate {
			parts = append(parts, "printed "+meta.PrintTime.Format(TimestampFormat))
		}
		if segments.ShowModifiedTime {
			parts = append(parts, "data modified "+meta.DataModified.Format(TimestampFormat))
		}
		return strings.Join(parts, ", ")
	}
}
