package schemas

// Dates travel as yyyy-mm-dd strings and are parsed at the controller layer.

type VirtualAssetRequest struct {
	Name            string  `json:"name"`
	CategoryID      int     `json:"categoryId"`
	ProjectID       *int    `json:"projectId"`
	TotalAmount     float64 `json:"totalAmount"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Description     string  `json:"description"`
	AccountUsername string  `json:"accountUsername"`
	AccountPassword string  `json:"accountPassword"`
}

type VirtualAssetResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	CategoryID      int     `json:"categoryId"`
	CategoryName    string  `json:"categoryName"`
	CategoryIcon    string  `json:"categoryIcon"`
	ProjectID       *int    `json:"projectId,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Description     string  `json:"description,omitempty"`
	AccountUsername string  `json:"accountUsername,omitempty"`
	AccountPassword string  `json:"accountPassword,omitempty"`

	// Derived, recomputed from today on every read.
	Status        string  `json:"status"`
	TotalDays     int     `json:"totalDays"`
	RemainingDays int     `json:"remainingDays"`
	DailyValue    float64 `json:"dailyValue"`
	ProgressPct   float64 `json:"progressPct"`
	MonthCost     float64 `json:"monthCost"`
}

type FixedAssetRequest struct {
	Name                  string   `json:"name"`
	CategoryID            int      `json:"categoryId"`
	ProjectID             *int     `json:"projectId"`
	OriginalValue         float64  `json:"originalValue"`
	ResidualRate          float64  `json:"residualRate"`
	PurchaseDate          string   `json:"purchaseDate"`
	DepreciationStartDate string   `json:"depreciationStartDate"`
	UsefulLifeYears       int      `json:"usefulLifeYears"`
	DepreciationMethod    string   `json:"depreciationMethod"`
	Status                string   `json:"status"`
	DisposeDate           string   `json:"disposeDate"`
	RentPrice             *float64 `json:"rentPrice"`
	RentDeposit           *float64 `json:"rentDeposit"`
	RentStartDate         string   `json:"rentStartDate"`
	RentEndDate           string   `json:"rentEndDate"`
	RentDueDay            *int     `json:"rentDueDay"`
	TenantName            *string  `json:"tenantName"`
	TenantPhone           *string  `json:"tenantPhone"`
}

type RentInfo struct {
	Price        *float64 `json:"price,omitempty"`
	Deposit      *float64 `json:"deposit,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	DueDay       *int     `json:"dueDay,omitempty"`
	TenantName   *string  `json:"tenantName,omitempty"`
	TenantPhone  *string  `json:"tenantPhone,omitempty"`
	NextDueDate  string   `json:"nextDueDate,omitempty"`
	DaysUntilDue *int     `json:"daysUntilDue,omitempty"`
	DueUrgency   string   `json:"dueUrgency,omitempty"`
	DueLabel     string   `json:"dueLabel,omitempty"`
	DueColor     string   `json:"dueColor,omitempty"`
}

type FixedAssetResponse struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	CategoryID            int    `json:"categoryId"`
	CategoryName          string `json:"categoryName"`
	CategoryIcon          string `json:"categoryIcon"`
	ProjectID             *int   `json:"projectId,omitempty"`
	PurchaseDate          string `json:"purchaseDate"`
	DepreciationStartDate string `json:"depreciationStartDate"`
	UsefulLifeYears       int    `json:"usefulLifeYears"`
	DepreciationMethod    string `json:"depreciationMethod"`
	Status                string `json:"status"`
	DisposeDate           string `json:"disposeDate,omitempty"`

	OriginalValue           float64   `json:"originalValue"`
	ResidualRate            float64   `json:"residualRate"`
	ResidualValue           float64   `json:"residualValue"`
	CurrentValue            float64   `json:"currentValue"`
	AccumulatedDepreciation float64   `json:"accumulatedDepreciation"`
	MonthlyDepreciation     float64   `json:"monthlyDepreciation"`
	AnnualDepreciation      float64   `json:"annualDepreciation"`
	DepreciationProgressPct float64   `json:"depreciationProgressPct"`
	EndOfLife               string    `json:"endOfLife"`
	Rent                    *RentInfo `json:"rent,omitempty"`
}

type ExpiringAssetResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	CategoryName  string  `json:"categoryName"`
	EndDate       string  `json:"endDate"`
	RemainingDays int     `json:"remainingDays"`
	TotalAmount   float64 `json:"totalAmount"`
}

type ExpenseRequest struct {
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate"`
	ExpenseType string  `json:"expenseType"`
	Note        string  `json:"note"`
}

type ExpenseResponse struct {
	ID          int     `json:"id"`
	AssetID     int     `json:"assetId"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate"`
	ExpenseType string  `json:"expenseType"`
	Note        string  `json:"note,omitempty"`
}
