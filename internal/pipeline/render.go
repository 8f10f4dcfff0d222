package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
)

// Sentinel errors for document rendering.
var (
	ErrTemplateParse = errors.New("document template parsing failed")
	ErrRender        = errors.New("document rendering failed")
)

// DocumentRenderer renders a CV record into a styled HTML document.
type DocumentRenderer interface {
	Render(ctx context.Context, rec *cv.Record, opts DocumentOptions) ([]byte, error)
}

// DocumentOptions carries the header values that are not in the record.
type DocumentOptions struct {
	Title    string // <title>; empty derives it from name and subtitle
	Location string // first part of the contact line; empty omits it
}

// TemplateRenderer fills the embedded CV template.
type TemplateRenderer struct {
	tmpl  *template.Template
	style template.CSS
}

// Compile-time interface check.
var _ DocumentRenderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer loads the CV style and template from loader.
func NewTemplateRenderer(loader assets.AssetLoader) (*TemplateRenderer, error) {
	css, err := loader.LoadStyle(assets.DocumentAsset)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}
	content, err := loader.LoadTemplate(assets.DocumentAsset)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	tmpl, err := template.New(assets.DocumentAsset).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	// #nosec G203 -- the style sheet is an embedded asset, never user input
	return &TemplateRenderer{tmpl: tmpl, style: template.CSS(css)}, nil
}

// Render executes the template against rec. rec is only read.
func (r *TemplateRenderer) Render(ctx context.Context, rec *cv.Record, opts DocumentOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrRender)
	}

	view := newDocumentView(rec, opts)
	view.Style = r.style

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// documentView is the template's data: one named slot per rendered value.
type documentView struct {
	Title       string
	Style       template.CSS
	Name        string
	Subtitle    string
	Contacts    []contactView
	Impact      []itemView
	Expertise   []itemView
	Experiences []experienceView
	Education   []string
}

type contactView struct {
	Label string
	Href  string
}

type itemView struct {
	Text    string
	Lead    string
	Rest    string
	HasLead bool
}

type experienceView struct {
	Company      string
	Title        string
	Location     string
	Period       string
	Achievements []itemView
}

func newDocumentView(rec *cv.Record, opts DocumentOptions) documentView {
	view := documentView{
		Title:     opts.Title,
		Name:      rec.Name,
		Subtitle:  rec.Subtitle,
		Contacts:  contacts(rec, opts.Location),
		Impact:    items(rec.ImpactSummary),
		Expertise: items(rec.TechnicalExpertise),
	}
	if view.Title == "" {
		view.Title = DocumentTitle(rec.Name, rec.Subtitle)
	}
	for _, exp := range rec.Experiences {
		view.Experiences = append(view.Experiences, experienceView{
			Company:      exp.Company,
			Title:        exp.Title,
			Location:     exp.Location,
			Period:       exp.Period,
			Achievements: items(exp.Achievements),
		})
	}
	for _, edu := range rec.Education {
		view.Education = append(view.Education, StripEmphasis(edu))
	}
	return view
}

func contacts(rec *cv.Record, location string) []contactView {
	var out []contactView
	if location != "" {
		out = append(out, contactView{Label: location})
	}
	if rec.ContactEmail != "" {
		out = append(out, contactView{Label: rec.ContactEmail, Href: "mailto:" + rec.ContactEmail})
	}
	if rec.LinkedInURL != "" {
		out = append(out, contactView{Label: strings.TrimPrefix(rec.LinkedInURL, "https://"), Href: rec.LinkedInURL})
	}
	return out
}

// items strips emphasis from each entry and applies the first-colon split.
func items(texts []string) []itemView {
	out := make([]itemView, 0, len(texts))
	for _, text := range texts {
		clean := StripEmphasis(text)
		lead, rest, ok := SplitLead(clean)
		out = append(out, itemView{Text: clean, Lead: lead, Rest: rest, HasLead: ok})
	}
	return out
}

// DocumentTitle joins the words of name and subtitle with underscores and
// appends "_CV", e.g. "Jane Doe" + "Staff Engineer" -> "Jane_Doe_Staff_Engineer_CV".
func DocumentTitle(name, subtitle string) string {
	words := strings.Fields(name + " " + subtitle)
	return strings.Join(append(words, "CV"), "_")
}
