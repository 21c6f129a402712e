package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"sort"

	"timevalue/src/utils"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const reportPageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: sans-serif; margin: 24px; }
h1 { font-size: 20px; }
table { border-collapse: collapse; width: 100%; margin-top: 12px; }
td, th { border: 1px solid #ddd; padding: 6px 10px; text-align: right; }
th { background: #f5f5f5; }
</style></head>
<body>
<h1>{{.Title}}</h1>
{{if .GraphBase}}<img src="data:image/png;base64,{{.GraphBase}}" style="width:100%"/>{{end}}
{{.Table}}
</body>
</html>`

type Page struct {
	Title     string
	GraphBase string
	Table     template.HTML
}

// RenderPage renders a single report page with an optional embedded chart.
func RenderPage(page Page) (string, error) {
	tpl, err := template.New("report").Parse(reportPageTemplate)
	if err != nil {
		return "", err
	}

	var output bytes.Buffer
	if err := tpl.Execute(&output, page); err != nil {
		return "", err
	}
	return output.String(), nil
}

// seriesPalette builds a color list of length n from the shared chart palette.
func seriesPalette(n int) opts.Colors {
	colors := make(opts.Colors, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, utils.GetChartColor(i))
	}
	return colors
}

// RenderCategoryPie renders the category value breakdown as a pie chart and
// returns it base64-encoded for embedding. Slices are sorted by name so a
// category keeps its color across renders.
func RenderCategoryPie(title string, data map[string]float64) (string, error) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithColorsOpts(seriesPalette(len(names))),
	)

	items := make([]opts.PieData, 0, len(names))
	for _, name := range names {
		items = append(items, opts.PieData{Name: name, Value: data[name]})
	}
	pie.AddSeries("Categories", items)

	var chartBuffer bytes.Buffer
	if err := pie.Render(&chartBuffer); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(chartBuffer.Bytes()), nil
}

// RenderMonthlyBar renders a 12-point monthly trend as a bar chart and
// returns it base64-encoded for embedding.
func RenderMonthlyBar(title string, labels []string, values []float64) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithColorsOpts(seriesPalette(1)),
	)

	items := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: v})
	}
	bar.SetXAxis(labels).AddSeries("Values", items)

	var chartBuffer bytes.Buffer
	if err := bar.Render(&chartBuffer); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(chartBuffer.Bytes()), nil
}

// GeneratePDF generates a PDF from an array of HTML strings
func GeneratePDF(htmlContents []string) (*bytes.Buffer, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	for _, html := range htmlContents {
		page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(html)))
		pdfg.AddPage(page)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}
