package liquidplanner

import (
	"context"
	"net/url"

	"github.com/andyle182810/liquidplanner/httpclient"
)

// Account returns the logged in user. It is the only route outside the
// workspace prefix.
func (c *Client) Account(ctx context.Context) (*httpclient.Result, error) {
	return c.get(ctx, c.baseURL+"/account", nil)
}

func (c *Client) Workspace(ctx context.Context) (*httpclient.Result, error) {
	return c.get(ctx, c.serviceURL, nil)
}

func (c *Client) ListMembers(ctx context.Context) (*httpclient.Result, error) {
	return c.get(ctx, c.workspacePath("members"), nil)
}

func (c *Client) GetMember(ctx context.Context, memberID int) (*httpclient.Result, error) {
	if err := requireID(memberID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("members", memberID), nil)
}

func (c *Client) ListActivities(ctx context.Context) (*httpclient.Result, error) {
	return c.get(ctx, c.workspacePath("activities"), nil)
}

func (c *Client) GetActivity(ctx context.Context, activityID int) (*httpclient.Result, error) {
	if err := requireID(activityID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("activities", activityID), nil)
}

func (c *Client) CreateActivity(ctx context.Context, activity ActivityInput) (*httpclient.Result, error) {
	if err := c.check(activity); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("activities"), map[string]ActivityInput{"activity": activity})
}

func (c *Client) Timesheets(ctx context.Context, params url.Values) (*httpclient.Result, error) {
	return c.get(ctx, c.workspacePath("timesheets")+"/", params)
}

// TimesheetEntries lists the entries of one timesheet, or of the whole
// workspace when timesheetID is zero.
func (c *Client) TimesheetEntries(ctx context.Context, timesheetID int, params url.Values) (*httpclient.Result, error) {
	if timesheetID < 0 {
		return nil, requireID(timesheetID)
	}

	if timesheetID == 0 {
		return c.get(ctx, c.workspacePath("timesheet_entries"), params)
	}

	return c.get(ctx, c.workspacePath("timesheets", timesheetID, "timesheet_entries"), params)
}
