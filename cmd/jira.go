// Package cmd provides the command-line interface for the labelcheck tool.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/jira"
)

var jiraProject string

var jiraCmd = &cobra.Command{
	Use:   "jira",
	Short: "Verify labels on JIRA issues",
	Long: `Verify that the issues of a JIRA project carry exactly the labels the
expectations file assigns to them.

Item numbers are resolved against the project key, so with --project EVAL
the expectation for number 3 is checked against issue EVAL-3. The
Issue/PR wording of the report follows the configured issue_range.

Example:
  labelcheck jira --project EVAL --config labelcheck.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jiraProject == "" {
			return fmt.Errorf("project flag is required")
		}

		cfg, err := config.LoadConfig(envFile)
		if err != nil {
			return err
		}
		if err := config.ValidateJiraConfig(cfg); err != nil {
			return err
		}

		verification, err := config.LoadVerificationConfig(configFile)
		if err != nil {
			return err
		}

		project := strings.ToUpper(jiraProject)
		client, err := jira.NewClient(cfg.Jira, project)
		if err != nil {
			return fmt.Errorf("failed to initialize jira client: %v", err)
		}

		return runVerification(cmd, verification, client, project)
	},
}

func init() {
	jiraCmd.Flags().StringVarP(&jiraProject, "project", "p", "", "JIRA project key to verify issues in")
}
