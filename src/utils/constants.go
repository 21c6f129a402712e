package utils

const ShortDashDateLayout = "2006-01-02"

const (
	AssetKindVirtual = "virtual"
	AssetKindFixed   = "fixed"
)

// EarliestReportYear bounds the year set shown in statistics. Years before it
// are never listed even when an asset touches them.
const EarliestReportYear = 2020

// CategoryIcons maps the known category icon keys to their display emoji.
// Unknown keys fall back to DefaultCategoryIcon.
var CategoryIcons = map[string]string{
	"video":     "🎬",
	"music":     "🎵",
	"cloud":     "☁️",
	"game":      "🎮",
	"reading":   "📚",
	"software":  "💻",
	"fitness":   "🏃",
	"education": "🎓",
	"phone":     "📱",
	"camera":    "📷",
	"car":       "🚗",
	"home":      "🏠",
	"furniture": "🛋️",
	"appliance": "🔌",
	"tool":      "🔧",
	"other":     "📦",
}

const DefaultCategoryIcon = "📦"

// GetCategoryIcon returns the emoji for an icon key, falling back to the
// default when the key is unknown or empty.
func GetCategoryIcon(key string) string {
	if icon, ok := CategoryIcons[key]; ok {
		return icon
	}
	return DefaultCategoryIcon
}

// ChartColors is the series palette for the report charts.
var ChartColors = []string{
	"#ffa366", "#ff8080", "#80b3ff", "#a3d977", "#c285ff", "#80e6d4",
	"#ffb366", "#ff6666", "#80b366", "#e680ff", "#808080", "#b3a3ff",
	"#80d4cc",
}

// GetChartColor returns the palette color for a series index, cycling when
// the index exceeds the palette size.
func GetChartColor(index int) string {
	return ChartColors[index%len(ChartColors)]
}
