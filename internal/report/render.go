package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/username/easter-report/internal/calendar"
)

// DefaultTitle is used when Options.Title is empty
const DefaultTitle = "Velikonoce"

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html"))

// Options controls report rendering
type Options struct {
	Title string
}

type reportData struct {
	Title string
	Dates []calendar.EasterDate
}

// Render writes the HTML document with one table row per date, in order
func Render(w io.Writer, dates []calendar.EasterDate, opts Options) error {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	data := reportData{
		Title: title,
		Dates: dates,
	}

	if err := reportTemplate.ExecuteTemplate(w, "report.html", data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}
