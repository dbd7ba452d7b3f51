package api

import (
	"github.com/tfrwatch/tfrwatch/app/advisory"
	"github.com/tfrwatch/tfrwatch/app/store"
	"github.com/tfrwatch/tfrwatch/app/tasks"
)

// MatchesResponse is the payload handed to display consumers: the full
// matched history, newest first, plus the day's summary statistics.
type MatchesResponse struct {
	Events          []advisory.Parsed `json:"events"`
	TodayCount      int               `json:"today_count"`
	UniqueCityCount int               `json:"unique_city_count"`
}

type Handler struct {
	store     store.Store
	scheduler tasks.TaskSchedulerInterface
	category  string
	keywords  int
}
