package dto

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"created_at"`
}

type SeedResponse struct {
	Success bool   `json:"success"`
	Added   int    `json:"added"`
	Error   string `json:"error,omitempty"`
}
