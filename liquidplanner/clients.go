package liquidplanner

import (
	"context"

	"github.com/andyle182810/liquidplanner/httpclient"
)

func (c *Client) ListClients(ctx context.Context) (*httpclient.Result, error) {
	return c.get(ctx, c.workspacePath("clients"), nil)
}

func (c *Client) GetClient(ctx context.Context, clientID int) (*httpclient.Result, error) {
	if err := requireID(clientID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("clients", clientID), nil)
}

func (c *Client) CreateClient(ctx context.Context, client ClientInput) (*httpclient.Result, error) {
	if err := c.check(client); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("clients"), map[string]ClientInput{"client": client})
}

func (c *Client) ListClientComments(ctx context.Context, clientID int) (*httpclient.Result, error) {
	if err := requireID(clientID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("clients", clientID, "comments"), nil)
}

func (c *Client) GetClientComment(ctx context.Context, clientID, commentID int) (*httpclient.Result, error) {
	if err := requireID(clientID, commentID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("clients", clientID, "comments", commentID), nil)
}

func (c *Client) DeleteClientComment(ctx context.Context, clientID, commentID int) (*httpclient.Result, error) {
	if err := requireID(clientID, commentID); err != nil {
		return nil, err
	}

	return c.delete(ctx, c.workspacePath("clients", clientID, "comments", commentID))
}

func (c *Client) ListProjects(ctx context.Context) (*httpclient.Result, error) {
	return c.get(ctx, c.workspacePath("projects"), nil)
}

func (c *Client) GetProject(ctx context.Context, projectID int) (*httpclient.Result, error) {
	if err := requireID(projectID); err != nil {
		return nil, err
	}

	return c.get(ctx, c.workspacePath("projects", projectID), nil)
}

func (c *Client) CreateProject(ctx context.Context, project ProjectInput) (*httpclient.Result, error) {
	if err := c.check(project); err != nil {
		return nil, err
	}

	return c.post(ctx, c.workspacePath("projects"), map[string]ProjectInput{"project": project})
}
