package rendering

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/jonathan/advert-generator/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is everything the form page shows.
type PageData struct {
	Form           types.JobFormInput
	Locations      []types.Location
	ShowRelocation bool
	CanSubmit      bool
	Result         types.GenerationResult
	ResultHTML     template.HTML
	Notice         string
}

var (
	pageOnce sync.Once
	pageTmpl *template.Template
	pageErr  error
)

func parsePage() (*template.Template, error) {
	pageOnce.Do(func() {
		tmpl, err := template.New("page.html").ParseFS(templateFS, "templates/page.html")
		if err != nil {
			pageErr = &TemplateError{
				Message: "failed to parse page template",
				Cause:   err,
			}
			return
		}
		pageTmpl = tmpl
	})
	return pageTmpl, pageErr
}

// NewPageData assembles the view of a form and result. Successful results
// are rendered from markdown to HTML.
func NewPageData(input types.JobFormInput, canSubmit bool, result types.GenerationResult) (PageData, error) {
	data := PageData{
		Form:           input,
		Locations:      types.Locations(),
		ShowRelocation: input.Location.OffersRelocation(),
		CanSubmit:      canSubmit && !result.IsPending(),
		Result:         result,
	}
	if result.Status == types.StatusSuccess {
		rendered, err := Markdown(result.Content)
		if err != nil {
			return data, err
		}
		data.ResultHTML = rendered
	}
	return data, nil
}

// RenderPage writes the form page to w.
func RenderPage(w io.Writer, data PageData) error {
	tmpl, err := parsePage()
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, data); err != nil {
		return &RenderError{
			Message: "failed to execute page template",
			Cause:   err,
		}
	}
	return nil
}
