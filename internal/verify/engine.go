package verify

import (
	"context"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/logging"
	"github.com/danielolaszy/labelcheck/pkg/models"
)

// Engine checks configured label expectations against the labels a fetcher
// reports for each item.
type Engine struct {
	config  *config.VerificationConfig
	fetcher LabelFetcher
}

// NewEngine creates an engine for a verification config and a label fetcher.
func NewEngine(config *config.VerificationConfig, fetcher LabelFetcher) *Engine {
	return &Engine{config: config, fetcher: fetcher}
}

// Run verifies every configured expectation in configuration order and
// returns the collected results. Items are checked strictly one at a time;
// each item is fetched exactly once per run. A failed fetch marks the item
// as failed and the run moves on to the next item, so the run always covers
// every configured item. A config with no expectations passes trivially.
func (e *Engine) Run(ctx context.Context) *models.Report {
	report := &models.Report{
		Results:   make([]models.ItemResult, 0, len(e.config.Expectations)),
		AllPassed: true,
	}

	for _, expectation := range e.config.Expectations {
		kind := e.config.Classify(expectation.Number)
		logging.Debug("verifying item",
			"kind", string(kind),
			"item_number", expectation.Number,
			"expected_labels", expectation.Labels)

		result := models.ItemResult{
			Number:   expectation.Number,
			Kind:     kind,
			Expected: expectation.Labels,
		}

		actual, err := e.fetcher.FetchLabels(ctx, expectation.Number)
		if err != nil {
			result.Reason = err.Error()
		} else {
			result.Actual = actual
			result.Passed = LabelsEqual(expectation.Labels, actual, e.config.SortLabels)
		}

		if !result.Passed {
			report.AllPassed = false
		}
		report.Results = append(report.Results, result)
	}

	return report
}
