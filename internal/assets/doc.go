// Package assets holds the style sheet and document template of the CV.
//
// Both are embedded at compile time:
//
//	styles/
//	└── cv.css      # palette, font stack, two-column skills, print variant
//	templates/
//	└── cv.html     # html/template with named slots for every record field
//
// Asset names are validated before lookup so a name can never address a
// file outside its directory.
package assets
