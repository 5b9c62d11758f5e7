package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
	retries    int
)

var rootCmd = &cobra.Command{
	Use:   "labelcheck",
	Short: "Labelcheck verifies Issue and PR label assignments against expectations",
	Long: `Labelcheck is a CLI tool that checks whether the Issues and PRs of a
tracked repository or board carry exactly the labels an expectations
file assigns to them.

The expectations file is YAML of the form:

  target_repo: demo-repo
  issue_range: "1-15"
  expected_labels:
    1: [bug]
    2: [enhancement, documentation]

Numbers inside issue_range count as Issues, all other numbers as PRs.
Each subcommand verifies the same expectations against a different
tracker. Credentials are read from the environment, or from a dotenv
file passed with --env.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all commands
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "labelcheck.yaml", "Path to the expectations file")
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", "Dotenv file to load credentials from")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 0, "Extra attempts for label fetches that fail transiently")

	rootCmd.AddCommand(githubCmd)
	rootCmd.AddCommand(jiraCmd)
	rootCmd.AddCommand(trelloCmd)
}
