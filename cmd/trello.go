package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/trello"
)

var trelloBoard string

// trelloCmd represents the Trello command
var trelloCmd = &cobra.Command{
	Use:   "trello",
	Short: "Verify labels on Trello cards",
	Long: `Verify that the cards of a Trello board carry exactly the labels the
expectations file assigns to them.

Item numbers are matched against the short card ids Trello shows on the
board, so the expectation for number 3 is checked against the card with
short id 3. The Issue/PR wording of the report follows the configured
issue_range.

Example:
  labelcheck trello --board "Eval Board" --config labelcheck.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trelloBoard == "" {
			return fmt.Errorf("board flag is required")
		}

		cfg, err := config.LoadConfig(envFile)
		if err != nil {
			return err
		}
		if err := config.ValidateTrelloConfig(cfg); err != nil {
			return err
		}

		verification, err := config.LoadVerificationConfig(configFile)
		if err != nil {
			return err
		}

		client, err := trello.NewClient(cfg.Trello, trelloBoard)
		if err != nil {
			return fmt.Errorf("failed to initialize trello client: %v", err)
		}

		return runVerification(cmd, verification, client, trelloBoard)
	},
}

func init() {
	trelloCmd.Flags().StringVarP(&trelloBoard, "board", "b", "", "Trello board name to verify cards on")
}
