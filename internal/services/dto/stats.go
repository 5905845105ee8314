package dto

type UserStatsResponse struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"by_role"`
}

type JobStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type ApplicationStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type RegistrationStatsResponse struct {
	Days          int   `json:"days"`
	Registrations int64 `json:"registrations"`
}
