package shared

// Task types processed by the worker binary.
const (
	TypeRefreshRatings = "movie:refresh_ratings"
)

// Worker queue names.
const (
	QueueDefault = "default"
	QueueLow     = "low"
)
