package jira

import (
	"context"
	"fmt"

	jira "github.com/andygrunwald/go-jira"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/logging"
	"github.com/danielolaszy/labelcheck/internal/verify"
)

// Client fetches issue labels from a JIRA project.
type Client struct {
	client  *jira.Client
	project string
}

// NewClient creates a new JIRA client scoped to a single project key.
// Item numbers are resolved against that project, so number 42 maps to
// the issue "PROJ-42".
func NewClient(cfg config.JiraConfig, project string) (*Client, error) {
	if cfg.BaseURL == "" || cfg.Username == "" || cfg.Token == "" {
		return nil, fmt.Errorf("jira configuration incomplete: JIRA_URL, JIRA_USERNAME and JIRA_TOKEN must be set")
	}
	if project == "" {
		return nil, fmt.Errorf("no jira project key provided")
	}

	logging.Debug("creating jira client",
		"base_url", cfg.BaseURL,
		"username", cfg.Username,
		"token", logging.MaskSensitive(cfg.Token),
		"project", project)

	// Create JIRA authentication transport
	tp := jira.BasicAuthTransport{
		Username: cfg.Username,
		Password: cfg.Token,
	}

	client, err := jira.NewClient(tp.Client(), cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %v", err)
	}

	return &Client{
		client:  client,
		project: project,
	}, nil
}

// FetchLabels returns the labels of the JIRA issue whose key is the
// client's project plus the given number.
func (c *Client) FetchLabels(ctx context.Context, number int) ([]string, error) {
	issueKey := fmt.Sprintf("%s-%d", c.project, number)

	issue, resp, err := c.client.Issue.GetWithContext(ctx, issueKey, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return nil, fmt.Errorf("%s: %w", issueKey, verify.ErrNotFound)
		}
		if resp == nil {
			logging.Error("jira request failed", "issue", issueKey, "error", err)
			return nil, fmt.Errorf("failed to fetch labels for %s: %s",
				issueKey, verify.TruncateDetail(err.Error()))
		}
		logging.Error("jira request failed",
			"issue", issueKey,
			"status", resp.StatusCode,
			"error", err)
		return nil, fmt.Errorf("failed to fetch labels for %s (status %d): %s",
			issueKey, resp.StatusCode, verify.TruncateDetail(err.Error()))
	}

	labels := make([]string, 0, len(issue.Fields.Labels))
	labels = append(labels, issue.Fields.Labels...)

	logging.Debug("fetched jira labels", "issue", issueKey, "labels", labels)
	return labels, nil
}
