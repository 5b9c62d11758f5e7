package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/report"
	"github.com/danielolaszy/labelcheck/internal/verify"
)

// retryDelay is the base wait between retried fetches. The wait grows
// linearly with the attempt number.
const retryDelay = time.Second

// runVerification checks every configured expectation through the given
// fetcher and renders the report to stdout. It returns an error when any
// check failed so the process exits non-zero.
func runVerification(cmd *cobra.Command, verification *config.VerificationConfig, fetcher verify.LabelFetcher, target string) error {
	engine := verify.NewEngine(verification, buildFetcher(fetcher, retries))
	result := engine.Run(cmd.Context())

	out := cmd.OutOrStdout()
	colorOutput := false
	if file, ok := out.(*os.File); ok {
		colorOutput = isatty.IsTerminal(file.Fd())
	}
	renderer := report.NewRenderer(out, colorOutput)
	renderer.Render(target, verification, result)

	if !result.AllPassed {
		return fmt.Errorf("%d of %d label checks failed", result.FailureCount(), len(result.Results))
	}
	return nil
}

// buildFetcher wraps the backend fetcher with retry handling when extra
// attempts were requested on the command line.
func buildFetcher(fetcher verify.LabelFetcher, extraAttempts int) verify.LabelFetcher {
	if extraAttempts <= 0 {
		return fetcher
	}
	return &verify.RetryingFetcher{
		Fetcher:  fetcher,
		Attempts: extraAttempts + 1,
		Delay:    retryDelay,
	}
}
