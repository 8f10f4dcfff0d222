// Package cv2pdf turns a CV written in a small Markdown dialect into a styled
// HTML document and prints that document to an A4 PDF with headless Chrome.
//
// # Quick Start
//
//	conv, err := cv2pdf.NewConverter(cv2pdf.WithLocation("Berlin, Germany"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cv.pdf", result.PDF, 0644)
//
// # Source Format
//
// The parser reads one line at a time and never fails:
//
//	## Jane Doe
//	**Staff Engineer** [jane@example.com](mailto:jane@example.com) | [LinkedIn](https://linkedin.com/in/jane)
//
//	### Impact Summary
//	* **Led migration:** cut p99 latency 40%
//
//	### Professional Experience
//	#### **Acme** | Staff Engineer
//	*Remote | 2020 - Present*
//	- Scaled ingestion 10x
//
//	### Education
//	- MSc Computer Science
//
// Level-3 headings pick the section by substring: "impact", "expertise" or
// "technical", "experience", "education". Lines that fit no rule are dropped
// and reported as Diagnostic values; see Parse.
//
// # Stages
//
//  1. Parse builds a Record
//  2. Converter.Render fills the fixed template (emphasis stripped, bold lead
//     before the first colon)
//  3. Converter.Paginate prints a local HTML file once the page is network idle
//
// Converter.ToHTML and Converter.Convert chain these stages.
//
// # Browser
//
// Pagination launches a browser per call and tears it down before returning.
// go-rod drives it by default; WithEngine(EngineChromedp) switches to chromedp.
// The executable comes from WithBrowserBin, ROD_BROWSER_BIN, or the system
// Chrome. When none is found, ErrBrowserUnavailable is returned before
// anything is launched, unless WithDownload(true) lets go-rod fetch Chromium.
//
// # Errors
//
// Failures wrap sentinel errors that can be checked with errors.Is:
// ErrInputNotFound, ErrBrowserUnavailable, ErrBrowserConnect, ErrPageCreate,
// ErrPageLoad, ErrPDFGeneration, ErrWritePDF, ErrWriteHTML.
package cv2pdf
