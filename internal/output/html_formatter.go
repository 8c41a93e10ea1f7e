package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/elampron/wealthsphere/internal/domain"
)

// HTMLFormatter produces a standalone HTML report of the projection.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Projection
		FirstUnderfundedYear int
	}{projection, projection.FirstUnderfundedYear()}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
