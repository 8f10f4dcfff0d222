package cv

import (
	"regexp"
	"strings"
)

var (
	// subtitlePattern splits the line after the name into a leading bold span and the rest.
	subtitlePattern = regexp.MustCompile(`^\*\*(.*?)\*\*\s*(.*)`)
	// emailPattern finds a bracketed token containing an @.
	emailPattern = regexp.MustCompile(`\[([^\]]+@[^\]]+)\]`)
	// linkedInPattern finds a [LinkedIn](url) link; the label must match exactly.
	linkedInPattern = regexp.MustCompile(`\[LinkedIn\]\(([^)]+)\)`)
	// entryPattern matches "**Company** | Title".
	entryPattern = regexp.MustCompile(`^\*\*([^*]+)\*\*\s*\|\s*(.+)`)
	// metadataPattern matches "Location | Period" once the asterisks are gone.
	metadataPattern = regexp.MustCompile(`^([^|]+)\|\s*(.+)`)
)

// Line prefixes recognized by the scanner.
const (
	namePrefix    = "## "
	sectionPrefix = "### "
	entryPrefix   = "#### "
)

// noEntry marks the absence of a current experience entry.
const noEntry = -1

// parser carries the scan state. current indexes the last created entry in
// rec.Experiences; it only ever moves forward.
type parser struct {
	rec     *Record
	section Section
	current int
	diags   []Diagnostic
}

// Parse scans lines once, top to bottom, and builds a Record.
// It never fails: lines that match no rule, or match a rule but not its
// expected shape, are dropped and reported in the returned diagnostics.
func Parse(lines []string) (*Record, []Diagnostic) {
	p := &parser{
		rec:     newRecord(),
		section: SectionNone,
		current: noEntry,
	}
	for i := 0; i < len(lines); {
		i = p.step(lines, i)
	}
	return p.rec, p.diags
}

// ParseText normalizes raw text into lines and parses it.
func ParseText(text string) (*Record, []Diagnostic) {
	return Parse(Lines(text))
}

// step handles lines[i] and returns the index of the next unread line.
// The first matching rule wins.
func (p *parser) step(lines []string, i int) int {
	line := lines[i]
	lineNo := i + 1

	switch {
	case strings.HasPrefix(line, namePrefix) && p.rec.Name == "":
		p.rec.Name = strings.TrimSpace(line[len(namePrefix):])
		// The subtitle line is consumed even when it does not match.
		if i+1 < len(lines) {
			p.subtitle(lineNo+1, lines[i+1])
			return i + 2
		}
	case strings.HasPrefix(line, sectionPrefix):
		p.sectionHeading(lineNo, line)
	case isBullet(line):
		p.bullet(lineNo, line)
	case strings.HasPrefix(line, entryPrefix):
		p.entryHeading(lineNo, line)
	case isMetadataLine(line) && p.current != noEntry:
		p.metadata(lineNo, line)
	case line == "":
	case strings.HasPrefix(line, namePrefix):
		p.drop(lineNo, ReasonDuplicateName, line)
	default:
		p.drop(lineNo, ReasonUnrecognizedLine, line)
	}
	return i + 1
}

func (p *parser) subtitle(lineNo int, line string) {
	m := subtitlePattern.FindStringSubmatch(line)
	if m == nil {
		p.drop(lineNo, ReasonUnmatchedSubtitle, line)
		return
	}
	p.rec.Subtitle = strings.TrimSpace(m[1])
	rest := strings.TrimSpace(m[2])
	if email := emailPattern.FindStringSubmatch(rest); email != nil {
		p.rec.ContactEmail = email[1]
	}
	if link := linkedInPattern.FindStringSubmatch(rest); link != nil {
		p.rec.LinkedInURL = link[1]
	}
}

func (p *parser) sectionHeading(lineNo int, line string) {
	p.section = ClassifySection(strings.TrimSpace(line[len(sectionPrefix):]))
	if p.section == SectionUnknown {
		p.drop(lineNo, ReasonUnknownSection, line)
	}
}

func (p *parser) bullet(lineNo int, line string) {
	item := strings.TrimSpace(line[2:])
	switch p.section {
	case SectionImpact:
		p.rec.ImpactSummary = append(p.rec.ImpactSummary, item)
	case SectionExpertise:
		p.rec.TechnicalExpertise = append(p.rec.TechnicalExpertise, item)
	case SectionEducation:
		p.rec.Education = append(p.rec.Education, item)
	case SectionExperience:
		if p.current == noEntry {
			p.drop(lineNo, ReasonBulletWithoutEntry, line)
			return
		}
		entry := &p.rec.Experiences[p.current]
		entry.Achievements = append(entry.Achievements, item)
	default:
		p.drop(lineNo, ReasonOrphanBullet, line)
	}
}

func (p *parser) entryHeading(lineNo int, line string) {
	if p.section != SectionExperience {
		p.drop(lineNo, ReasonEntryOutsideExperience, line)
		return
	}
	m := entryPattern.FindStringSubmatch(strings.TrimSpace(line[len(entryPrefix):]))
	if m == nil {
		p.drop(lineNo, ReasonMalformedEntryHeading, line)
		return
	}
	p.rec.Experiences = append(p.rec.Experiences, Experience{
		Company:      strings.TrimSpace(m[1]),
		Title:        strings.TrimSpace(m[2]),
		Achievements: []string{},
	})
	p.current = len(p.rec.Experiences) - 1
}

// metadata overwrites location and period of the current entry. It does not
// look at the current section: a stray italic line in a later section still
// lands on the last entry.
func (p *parser) metadata(lineNo int, line string) {
	meta := strings.TrimSpace(strings.Trim(line, "*"))
	m := metadataPattern.FindStringSubmatch(meta)
	if m == nil {
		p.drop(lineNo, ReasonMalformedMetadata, line)
		return
	}
	entry := &p.rec.Experiences[p.current]
	entry.Location = strings.TrimSpace(m[1])
	entry.Period = strings.TrimSpace(m[2])
}

func (p *parser) drop(lineNo int, reason Reason, line string) {
	p.diags = append(p.diags, Diagnostic{Line: lineNo, Reason: reason, Text: line})
}

// isBullet reports whether line starts with one of the two bullet markers.
func isBullet(line string) bool {
	return strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
}

// isMetadataLine reports whether line opens with a single asterisk.
func isMetadataLine(line string) bool {
	return strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "**")
}
