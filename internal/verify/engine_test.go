package verify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/pkg/models"
)

// stubFetcher implements LabelFetcher for testing.
type stubFetcher struct {
	FetchLabelsFunc func(ctx context.Context, number int) ([]string, error)
	calls           []int
}

func (s *stubFetcher) FetchLabels(ctx context.Context, number int) ([]string, error) {
	s.calls = append(s.calls, number)
	if s.FetchLabelsFunc != nil {
		return s.FetchLabelsFunc(ctx, number)
	}
	return nil, errors.New("FetchLabels not implemented")
}

func TestEngineRunScenario(t *testing.T) {
	// Item 1 carries the expected label, item 2 carries a different one.
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   2,
		SortLabels: true,
		Expectations: []config.Expectation{
			{Number: 1, Labels: []string{"bug"}},
			{Number: 2, Labels: []string{"enhancement"}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			switch number {
			case 1:
				return []string{"bug"}, nil
			case 2:
				return []string{"feature"}, nil
			}
			return nil, fmt.Errorf("unexpected item %d", number)
		},
	}

	report := NewEngine(verification, fetcher).Run(context.Background())

	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if !report.Results[0].Passed {
		t.Error("expected item 1 to pass")
	}
	if report.Results[1].Passed {
		t.Error("expected item 2 to fail")
	}
	if report.AllPassed {
		t.Error("expected AllPassed to be false")
	}
	if report.FailureCount() != 1 {
		t.Errorf("expected 1 failure, got %d", report.FailureCount())
	}

	// Both label sets are captured for the mismatch diagnostics.
	mismatch := report.Results[1]
	if diff := cmp.Diff([]string{"enhancement"}, mismatch.Expected); diff != "" {
		t.Errorf("expected labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"feature"}, mismatch.Actual); diff != "" {
		t.Errorf("actual labels mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineRunNotFoundContinues(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: true,
		Expectations: []config.Expectation{
			{Number: 4, Labels: []string{"bug"}},
			{Number: 7, Labels: []string{"enhancement"}},
			{Number: 9, Labels: []string{"documentation"}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			if number == 7 {
				return nil, fmt.Errorf("issue #7: %w", ErrNotFound)
			}
			switch number {
			case 4:
				return []string{"bug"}, nil
			case 9:
				return []string{"documentation"}, nil
			}
			return nil, fmt.Errorf("unexpected item %d", number)
		},
	}

	report := NewEngine(verification, fetcher).Run(context.Background())

	// Every configured item is still processed, in order.
	if diff := cmp.Diff([]int{4, 7, 9}, fetcher.calls); diff != "" {
		t.Errorf("fetch order mismatch (-want +got):\n%s", diff)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}

	missing := report.Results[1]
	if missing.Passed {
		t.Error("expected the missing item to fail")
	}
	if missing.Reason == "" {
		t.Error("expected a failure reason for the missing item")
	}
	if missing.Actual != nil {
		t.Errorf("expected no actual labels for the missing item, got %v", missing.Actual)
	}

	if !report.Results[0].Passed || !report.Results[2].Passed {
		t.Error("expected the surrounding items to pass")
	}
	if report.AllPassed {
		t.Error("expected AllPassed to be false")
	}
}

func TestEngineRunTransientFailure(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: true,
		Expectations: []config.Expectation{
			{Number: 4, Labels: []string{"bug"}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			return nil, errors.New("failed to fetch labels (status 500): server error")
		},
	}

	report := NewEngine(verification, fetcher).Run(context.Background())

	result := report.Results[0]
	if result.Passed {
		t.Error("expected the item to fail")
	}
	if result.Reason != "failed to fetch labels (status 500): server error" {
		t.Errorf("unexpected failure reason: %q", result.Reason)
	}
	if result.Actual != nil {
		t.Errorf("expected no actual labels, got %v", result.Actual)
	}
}

func TestEngineRunEmptyConfig(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: true,
	}

	fetcher := &stubFetcher{}
	report := NewEngine(verification, fetcher).Run(context.Background())

	if len(report.Results) != 0 {
		t.Errorf("expected no results, got %d", len(report.Results))
	}
	if !report.AllPassed {
		t.Error("expected an empty run to pass trivially")
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("expected no fetches, got %d", len(fetcher.calls))
	}
}

func TestEngineRunClassification(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: true,
		Expectations: []config.Expectation{
			{Number: 10, Labels: []string{"bug"}},
			{Number: 20, Labels: []string{"bug"}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			return []string{"bug"}, nil
		},
	}

	report := NewEngine(verification, fetcher).Run(context.Background())

	if report.Results[0].Kind != models.KindIssue {
		t.Errorf("expected item 10 to classify as Issue, got %s", report.Results[0].Kind)
	}
	if report.Results[1].Kind != models.KindPR {
		t.Errorf("expected item 20 to classify as PR, got %s", report.Results[1].Kind)
	}
}

func TestEngineRunUnsortedComparison(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: false,
		Expectations: []config.Expectation{
			{Number: 4, Labels: []string{"bug", "verified"}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			return []string{"verified", "bug"}, nil
		},
	}

	report := NewEngine(verification, fetcher).Run(context.Background())

	if report.Results[0].Passed {
		t.Error("expected positional comparison to fail on reordered labels")
	}
}

func TestEngineRunEmptyLabelsMatch(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: true,
		Expectations: []config.Expectation{
			{Number: 4, Labels: []string{}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			return []string{}, nil
		},
	}

	report := NewEngine(verification, fetcher).Run(context.Background())

	result := report.Results[0]
	if !result.Passed {
		t.Error("expected an unlabeled item with an empty expectation to pass")
	}
	if result.Actual == nil {
		t.Error("expected a successful fetch to record a non-nil label list")
	}
	if result.Reason != "" {
		t.Errorf("expected no failure reason, got %q", result.Reason)
	}
}

func TestEngineRunIdempotent(t *testing.T) {
	verification := &config.VerificationConfig{
		TargetRepo: "demo-repo",
		IssueMin:   1,
		IssueMax:   15,
		SortLabels: true,
		Expectations: []config.Expectation{
			{Number: 4, Labels: []string{"bug"}},
			{Number: 20, Labels: []string{"enhancement"}},
		},
	}

	fetcher := &stubFetcher{
		FetchLabelsFunc: func(ctx context.Context, number int) ([]string, error) {
			switch number {
			case 4:
				return []string{"bug"}, nil
			case 20:
				return []string{"feature"}, nil
			}
			return nil, fmt.Errorf("unexpected item %d", number)
		},
	}

	engine := NewEngine(verification, fetcher)
	first := engine.Run(context.Background())
	second := engine.Run(context.Background())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reports differ across runs (-first +second):\n%s", diff)
	}
}
