package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCategoryIcon(t *testing.T) {
	assert.Equal(t, "🎬", GetCategoryIcon("video"))
	assert.Equal(t, DefaultCategoryIcon, GetCategoryIcon("unknown-key"))
	assert.Equal(t, DefaultCategoryIcon, GetCategoryIcon(""))
}

func TestGetChartColorCyclesPalette(t *testing.T) {
	assert.Equal(t, ChartColors[0], GetChartColor(0))
	assert.Equal(t, ChartColors[1], GetChartColor(1))
	assert.Equal(t, ChartColors[0], GetChartColor(len(ChartColors)))
	assert.Equal(t, ChartColors[3], GetChartColor(len(ChartColors)+3))
}
