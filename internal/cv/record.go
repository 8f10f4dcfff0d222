// Package cv recovers a structured resume record from line-oriented markup.
//
// The input is a restricted markdown subset: one "## Name" heading, a
// subtitle line right after it, "### Section" headings, "#### **Company** |
// Title" entry headings, "*Location | Period*" metadata lines and bullet
// items. Parsing is a single forward scan; lines that do not fit are dropped
// and reported as Diagnostics instead of failing.
package cv

// Record is the structured form of a resume.
// It is built incrementally by Parse and must be treated as read-only afterwards.
type Record struct {
	Name               string       `yaml:"name"`
	Subtitle           string       `yaml:"subtitle"`
	ContactEmail       string       `yaml:"contactEmail"`
	LinkedInURL        string       `yaml:"linkedinUrl"`
	ImpactSummary      []string     `yaml:"impactSummary"`
	TechnicalExpertise []string     `yaml:"technicalExpertise"`
	Experiences        []Experience `yaml:"experiences"`
	Education          []string     `yaml:"education"`
}

// Experience is one employment entry.
// Location and Period stay empty until a metadata line follows the heading.
type Experience struct {
	Company      string   `yaml:"company"`
	Title        string   `yaml:"title"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Achievements []string `yaml:"achievements"`
}

// newRecord returns an empty record with non-nil lists, so an empty
// document still dumps as empty sequences rather than nulls.
func newRecord() *Record {
	return &Record{
		ImpactSummary:      []string{},
		TechnicalExpertise: []string{},
		Experiences:        []Experience{},
		Education:          []string{},
	}
}
