package cv

// Reason explains why a line was dropped.
type Reason string

const (
	ReasonUnmatchedSubtitle      Reason = "unmatched-subtitle"
	ReasonDuplicateName          Reason = "duplicate-name"
	ReasonUnknownSection         Reason = "unknown-section"
	ReasonOrphanBullet           Reason = "orphan-bullet"
	ReasonBulletWithoutEntry     Reason = "bullet-without-entry"
	ReasonMalformedEntryHeading  Reason = "malformed-entry-heading"
	ReasonEntryOutsideExperience Reason = "entry-heading-outside-experience"
	ReasonMalformedMetadata      Reason = "malformed-metadata"
	ReasonUnrecognizedLine       Reason = "unrecognized-line"
)

// Diagnostic records one line that did not contribute to the Record.
// Line is 1-based relative to the normalized input.
type Diagnostic struct {
	Line   int
	Reason Reason
	Text   string
}

// CountByReason tallies diagnostics per reason.
func CountByReason(diags []Diagnostic) map[Reason]int {
	counts := make(map[Reason]int, len(diags))
	for _, d := range diags {
		counts[d.Reason]++
	}
	return counts
}
