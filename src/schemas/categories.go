package schemas

type CategoryRequest struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	AssetKind string `json:"assetKind"`
	SortOrder int    `json:"sortOrder"`
}

type CategoryResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Emoji     string `json:"emoji"`
	AssetKind string `json:"assetKind"`
	SortOrder int    `json:"sortOrder"`
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ProjectResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}
