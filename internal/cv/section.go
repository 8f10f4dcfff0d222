package cv

import "strings"

// Section identifies which record list a bullet line is routed to.
type Section int

// Recognized sections. SectionNone is the state before any "###" heading;
// SectionUnknown is a heading that matched none of the keywords.
const (
	SectionNone Section = iota
	SectionImpact
	SectionExpertise
	SectionExperience
	SectionEducation
	SectionUnknown
)

// String returns the lowercase section name.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "none"
	case SectionImpact:
		return "impact"
	case SectionExpertise:
		return "expertise"
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	default:
		return "unknown"
	}
}

// ClassifySection maps a "###" heading text to a Section.
// Matching is a case-insensitive substring test, checked in order:
// impact, expertise or technical, experience, education.
func ClassifySection(heading string) Section {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "impact"):
		return SectionImpact
	case strings.Contains(h, "expertise"), strings.Contains(h, "technical"):
		return SectionExpertise
	case strings.Contains(h, "experience"):
		return SectionExperience
	case strings.Contains(h, "education"):
		return SectionEducation
	default:
		return SectionUnknown
	}
}
