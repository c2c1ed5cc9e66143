// Package renderer renders prediction reports as markdown for terminal
// display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var content embed.FS

// templates is the root of the embedded template files.
var templates, _ = fs.Sub(content, "templates")

// PredictionMarkdown renders the Prediction view to a markdown string.
func PredictionMarkdown(p *Prediction) string {
	partials := map[string]string{
		"prediction_title":           "prediction_title.md",
		"prediction_allocations":     "prediction_allocations.md",
		"prediction_projections":     "prediction_projections.md",
		"prediction_recommendations": "prediction_recommendations.md",
	}
	return renderTemplate("prediction", "prediction.md", partials, p)
}

// renderTemplate parses the main template file and its partial files from
// the embedded filesystem and executes it against data.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
