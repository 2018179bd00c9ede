package models

import "time"

// Background task names.
const (
	TaskMlModelRetrain                 = "ml_model_retrain"
	TaskItemPopularityScoreRecalibrate = "item_popularity_score_recalibrate"
)

// Background task statuses.
const (
	TaskStatusRequestSent = "REQUEST_SENT"
	TaskStatusRunning     = "RUNNING"
	TaskStatusFailed      = "FAILED"
	TaskStatusCompleted   = "COMPLETED"
)

// BackgroundTask describes one background task run.
type BackgroundTask struct {
	TaskID    string  `json:"task_id"`
	Name      string  `json:"name"`
	StartTime float64 `json:"start_time"`
	Status    string  `json:"status"`
	Progress  string  `json:"progress"`
}

// StartedAt returns the task start time as a time.Time.
func (t *BackgroundTask) StartedAt() time.Time {
	return TimeFromUnixSeconds(t.StartTime)
}

// ListRecentBackgroundTasksResult lists recently started background tasks.
type ListRecentBackgroundTasksResult struct {
	Tasks []BackgroundTask `json:"tasks"`
}
