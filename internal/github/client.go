// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/logging"
	"github.com/danielolaszy/labelcheck/internal/verify"
	"github.com/danielolaszy/labelcheck/internal/version"
)

// Client reads item labels from a single GitHub repository.
type Client struct {
	client       *github.Client
	organization string
	repository   string
}

// NewClient creates a GitHub API client bound to one repository inside the
// configured organization. It builds the API base URL from the configured
// domain, authenticates with the configured token and verifies the token by
// fetching the authenticated user, so a bad credential fails here rather
// than once per item.
func NewClient(cfg config.GitHubConfig, repository string) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token not found in configuration")
	}
	if cfg.Organization == "" {
		return nil, fmt.Errorf("github organization not found in configuration")
	}
	if repository == "" {
		return nil, fmt.Errorf("repository name cannot be empty")
	}

	domain := cfg.Domain
	if domain == "" {
		domain = "github.com"
	}
	apiURL := apiURLForDomain(domain)

	logging.Debug("github configuration",
		"domain", domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(cfg.Token))

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)
	client.UserAgent = version.UserAgent

	// If not using default GitHub.com, set custom API endpoint
	if domain != "github.com" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	// Test the token
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		logging.Error("failed to test github token", "error", err)
		return nil, fmt.Errorf("error testing github token: %w", err)
	}

	logging.Debug("github authentication successful", "username", user.GetLogin())

	return &Client{
		client:       client,
		organization: cfg.Organization,
		repository:   repository,
	}, nil
}

// apiURLForDomain returns the REST API base URL for a GitHub domain. The
// hosted github.com uses its own API host; any other domain is treated as a
// GitHub Enterprise installation.
func apiURLForDomain(domain string) string {
	if domain == "github.com" {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// FetchLabels retrieves the current label names of an issue or pull request
// with a single request. The issues endpoint covers both kinds since the API
// exposes pull requests as issues. A 404 maps to verify.ErrNotFound; any
// other failure is returned with the response status and a truncated detail.
func (c *Client) FetchLabels(ctx context.Context, number int) ([]string, error) {
	logging.Debug("retrieving labels",
		"organization", c.organization,
		"repository", c.repository,
		"item_number", number)

	issue, resp, err := c.client.Issues.Get(ctx, c.organization, c.repository, number)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s/%s#%d: %w", c.organization, c.repository, number, verify.ErrNotFound)
		}
		if resp == nil {
			logging.Error("failed to fetch item labels",
				"repository", c.repository,
				"item_number", number,
				"error", err)
			return nil, fmt.Errorf("failed to fetch labels for %s/%s#%d: %s",
				c.organization, c.repository, number, verify.TruncateDetail(err.Error()))
		}
		logging.Error("failed to fetch item labels",
			"repository", c.repository,
			"item_number", number,
			"status_code", resp.StatusCode,
			"error", err)
		return nil, fmt.Errorf("failed to fetch labels for %s/%s#%d (status %d): %s",
			c.organization, c.repository, number, resp.StatusCode, verify.TruncateDetail(err.Error()))
	}

	labelNames := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labelNames = append(labelNames, label.GetName())
	}

	logging.Debug("retrieved labels",
		"repository", c.repository,
		"item_number", number,
		"labels", labelNames)
	return labelNames, nil
}
