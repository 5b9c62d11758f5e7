package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/github"
)

var githubCmd = &cobra.Command{
	Use:   "github",
	Short: "Verify labels on GitHub Issues and PRs",
	Long: `Verify that the GitHub Issues and PRs of the configured repository
carry exactly the labels the expectations file assigns to them.

The repository owner is taken from GITHUB_ORGANIZATION and the
repository name from the target_repo field of the expectations file.
Set GITHUB_DOMAIN to point at a GitHub Enterprise installation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(envFile)
		if err != nil {
			return err
		}
		if err := config.ValidateGitHubConfig(cfg); err != nil {
			return err
		}

		verification, err := config.LoadVerificationConfig(configFile)
		if err != nil {
			return err
		}

		client, err := github.NewClient(cfg.GitHub, verification.TargetRepo)
		if err != nil {
			return fmt.Errorf("failed to initialize GitHub client: %w", err)
		}

		target := fmt.Sprintf("%s/%s", cfg.GitHub.Organization, verification.TargetRepo)
		return runVerification(cmd, verification, client, target)
	},
}
