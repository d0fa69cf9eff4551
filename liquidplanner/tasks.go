package liquidplanner

import (
	"context"
	"net/url"

	"github.com/andyle182810/liquidplanner/httpclient"
)

func (c *Client) ListTasks(ctx context.Context, params url.Values) (*httpclient.Result, error) {
	return c.get(ctx, c.workspacePath("tasks"), params)
}

func (c *Client) GetTask(ctx context.Context, taskID int) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("tasks", taskID), nil)
}

func (c *Client) CreateTask(ctx context.Context, task TaskInput) (*httpclient.Result, error) {
	if err := c.check(task); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("tasks"), map[string]TaskInput{"task": task})
}

func (c *Client) UpdateTask(ctx context.Context, taskID int, task TaskInput) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	if err := c.check(task); err != nil {
		return nil, err
	}

	return c.put(ctx, c.workspacePath("tasks", taskID), map[string]TaskInput{"task": task})
}

func (c *Client) DeleteTask(ctx context.Context, taskID int) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	return c.delete(ctx, c.workspacePath("tasks", taskID))
}

func (c *Client) TrackTime(ctx context.Context, taskID int, entry TrackTimeInput) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	if err := c.check(entry); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("tasks", taskID, "track_time"), entry)
}

func (c *Client) CreateTaskComment(ctx context.Context, taskID int, comment CommentInput) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	if err := c.check(comment); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("tasks", taskID, "comments"), map[string]CommentInput{"comment": comment})
}

func (c *Client) CreateTaskNote(ctx context.Context, taskID int, note NoteInput) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	if err := c.check(note); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("tasks", taskID, "note"), map[string]NoteInput{"note": note})
}

func (c *Client) CreateTaskLink(ctx context.Context, taskID int, link LinkInput) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	if err := c.check(link); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("tasks", taskID, "links"), map[string]LinkInput{"link": link})
}

func (c *Client) TaskTimesheetEntries(ctx context.Context, taskID int, params url.Values) (*httpclient.Result, error) {
	if err := requireID(taskID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("tasks", taskID, "timesheet_entries"), params)
}

// UpdateEstimate sets the low and high remaining effort of any tree item,
// task or package.
func (c *Client) UpdateEstimate(ctx context.Context, itemID int, estimate EstimateInput) (*httpclient.Result, error) {
	if err := requireID(itemID); err != nil {
		return nil, err
	}

	if err := c.check(estimate); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("treeitems", itemID, "estimates"), estimate)
}
