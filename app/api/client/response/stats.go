package response

import "time"

type StatusStat struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type PoleStat struct {
	Pole  string `json:"pole"`
	Count int    `json:"count"`
}

type TaskStatsResponse struct {
	Total       int          `json:"total"`
	ByStatus    []StatusStat `json:"by_status"`
	ByPole      []PoleStat   `json:"by_pole"`
	GeneratedAt time.Time    `json:"generated_at"`
}
