package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-reco-client/api"
	"github.com/jrsteele09/go-reco-client/models"
)

// TriggerBackgroundTask starts a new background task, such as
// models.TaskMlModelRetrain. A task of the same name already running is a
// duplicated-error from the server.
// Endpoint: POST tasks/{name}/
func (c *Client) TriggerBackgroundTask(ctx context.Context, taskName string) error {
	if taskName == "" {
		return errors.New("[TriggerBackgroundTask] taskName is required")
	}

	return c.send(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "tasks/" + url.PathEscape(taskName) + "/",
	}, nil)
}

// ListRecentBackgroundTasks lists the recent runs of a background task.
// Endpoint: GET tasks/{name}/recents/
func (c *Client) ListRecentBackgroundTasks(ctx context.Context, taskName string) (*models.ListRecentBackgroundTasksResult, error) {
	if taskName == "" {
		return nil, errors.New("[ListRecentBackgroundTasks] taskName is required")
	}

	var result models.ListRecentBackgroundTasksResult
	err := c.send(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "tasks/" + url.PathEscape(taskName) + "/recents/",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
