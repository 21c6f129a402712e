package schemas

type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type MonthPoint struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

type VirtualStatusCounts struct {
	Active   int `json:"active"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

type FixedStatusCounts struct {
	InUse int `json:"inUse"`
	Idle  int `json:"idle"`
}

// YearSummary aggregates one calendar year of engine output. Status counts
// reflect today's real-world state of the assets that touch the year, not a
// historical reconstruction.
type YearSummary struct {
	Year            int                  `json:"year"`
	TotalAmount     float64              `json:"totalAmount"`
	AveragePerMonth float64              `json:"averagePerMonth"`
	MaxMonth        MonthPoint           `json:"maxMonth"`
	MonthlyTrend    []MonthPoint         `json:"monthlyTrend"`
	Categories      []CategoryValue      `json:"categories"`
	RentIncome      float64              `json:"rentIncome,omitempty"`
	VirtualStatus   *VirtualStatusCounts `json:"virtualStatus,omitempty"`
	FixedStatus     *FixedStatusCounts   `json:"fixedStatus,omitempty"`
}

type YearlyReportResponse struct {
	Years   []int        `json:"years"`
	Virtual *YearSummary `json:"virtual,omitempty"`
	Fixed   *YearSummary `json:"fixed,omitempty"`
}
