package render

import (
	"encoding/base64"
	"testing"

	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPageEmbedsTitleAndChart(t *testing.T) {
	html, err := RenderPage(Page{Title: "2024 Report", GraphBase: "aGVsbG8="})
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>2024 Report</h1>")
	assert.Contains(t, html, "data:image/png;base64,aGVsbG8=")
}

func TestRenderCategoryPieUsesPalette(t *testing.T) {
	encoded, err := RenderCategoryPie("Category Breakdown", map[string]float64{
		"云服务": 365,
		"音乐":  128,
		"视频":  240,
	})
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	chart := string(decoded)

	// Three slices draw the first three palette colors, in sorted name order.
	for i := 0; i < 3; i++ {
		assert.Contains(t, chart, utils.GetChartColor(i))
	}
	assert.Contains(t, chart, "云服务")
}

func TestRenderMonthlyBarUsesPalette(t *testing.T) {
	encoded, err := RenderMonthlyBar("Monthly Trend",
		[]string{"01", "02", "03"}, []float64{10, 20, 30})
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), utils.GetChartColor(0))
}
