package schemas

type DashboardResponse struct {
	VirtualAssetCount int     `json:"virtualAssetCount"`
	FixedAssetCount   int     `json:"fixedAssetCount"`
	MonthVirtualCost  float64 `json:"monthVirtualCost"`
	MonthRentIncome   float64 `json:"monthRentIncome"`
	FixedTotalValue   float64 `json:"fixedTotalValue"`
	FixedOriginal     float64 `json:"fixedOriginal"`
	ExpiringSoonCount int     `json:"expiringSoonCount"`
}

type NotificationSettingRequest struct {
	ExpiringEnabled bool `json:"expiringEnabled"`
	ExpiringDays    int  `json:"expiringDays"`
	RentDueEnabled  bool `json:"rentDueEnabled"`
	RentDueDays     int  `json:"rentDueDays"`
}

type NotificationSettingResponse struct {
	ExpiringEnabled bool `json:"expiringEnabled"`
	ExpiringDays    int  `json:"expiringDays"`
	RentDueEnabled  bool `json:"rentDueEnabled"`
	RentDueDays     int  `json:"rentDueDays"`
}

type PreferenceRequest struct {
	CurrencySymbol string `json:"currencySymbol"`
	Theme          string `json:"theme"`
	HideAmounts    bool   `json:"hideAmounts"`
}

type PreferenceResponse struct {
	CurrencySymbol string `json:"currencySymbol"`
	Theme          string `json:"theme"`
	HideAmounts    bool   `json:"hideAmounts"`
}

type NotificationResponse struct {
	ID        int    `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	AssetID   *int   `json:"assetId,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
