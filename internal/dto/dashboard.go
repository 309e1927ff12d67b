package dto

type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Total string `json:"total"`
}

type DayTotalResponse struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Total string `json:"total"`
}

type SummaryResponse struct {
	Total   string `json:"total"`
	Count   int    `json:"count"`
	Average string `json:"average"`
}

type DashboardResponse struct {
	Year       int                     `json:"year"`
	Month      int                     `json:"month"`
	Summary    SummaryResponse         `json:"summary"`
	ByCategory []CategoryTotalResponse `json:"by_category"`
	ByDay      []DayTotalResponse      `json:"by_day"`
}
