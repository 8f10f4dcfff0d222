// Package pipeline turns a parsed CV record into a styled HTML document.
//
// Free-text items go through two stages before they reach the template:
//   - StripEmphasis removes **bold** and *italic* wrappers
//   - SplitLead cuts the item at its first colon so the lead can be set bold
//
// Impact, expertise and achievement items take both stages. Education items
// are only stripped.
//
// Structural fields (name, subtitle, company, title, location, period) are
// passed through as parsed. All substitution goes through html/template, so
// field text can never inject markup into the document.
//
// Pagination is handled by the root cv2pdf package; this package never
// touches a browser.
package pipeline
