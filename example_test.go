package cv2pdf_test

import (
	"context"
	"fmt"
	"strings"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// ExampleParse shows the record and the diagnostics for a short CV.
func ExampleParse() {
	source := strings.Join([]string{
		"## Jane Doe",
		"**Staff Engineer** [jane@example.com](mailto:jane@example.com)",
		"### Impact Summary",
		"* **Led migration:** cut p99 latency 40%",
		"a stray paragraph",
	}, "\n")

	rec, diags := cv2pdf.Parse(source)
	fmt.Println(rec.Name, "/", rec.Subtitle, "/", rec.ContactEmail)
	fmt.Println(len(rec.ImpactSummary), "impact item")
	for _, d := range diags {
		fmt.Printf("line %d: %s\n", d.Line, d.Reason)
	}
	// Output:
	// Jane Doe / Staff Engineer / jane@example.com
	// 1 impact item
	// line 5: unrecognized-line
}

// ExampleConverter_ToHTML renders a CV without a browser.
// Converter.Convert and Converter.Paginate additionally need Chrome.
func ExampleConverter_ToHTML() {
	conv, err := cv2pdf.NewConverter(cv2pdf.WithLocation("Berlin, Germany"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.ToHTML(context.Background(), "## Jane Doe\n**Staff Engineer**")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := string(result.HTML)
	fmt.Println(strings.Contains(html, "<title>Jane_Doe_Staff_Engineer_CV</title>"))
	fmt.Println(strings.Contains(html, "Berlin, Germany"))
	// Output:
	// true
	// true
}
