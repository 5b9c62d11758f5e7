package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielolaszy/labelcheck/internal/logging"
	"github.com/danielolaszy/labelcheck/pkg/models"
)

// Expectation pairs an item number with the labels it must carry.
type Expectation struct {
	Number int
	Labels []string
}

// VerificationConfig is the validated, immutable description of one
// verification run: which repository to check, which numbers count as
// issues, and which labels each item must carry.
type VerificationConfig struct {
	TargetRepo string
	IssueMin   int
	IssueMax   int

	// SortLabels selects order-insensitive comparison. Defaults to true.
	SortLabels bool

	// Expectations preserves the document order of the expected_labels
	// mapping.
	Expectations []Expectation
}

// Classify returns the kind of an item: numbers inside the configured issue
// range are issues, every other number is a pull request.
func (c *VerificationConfig) Classify(number int) models.ItemKind {
	if number >= c.IssueMin && number <= c.IssueMax {
		return models.KindIssue
	}
	return models.KindPR
}

// LoadVerificationConfig reads and parses a verification config file.
func LoadVerificationConfig(path string) (*VerificationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read verification config: %w", err)
	}

	config, err := ParseVerificationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid verification config %s: %w", path, err)
	}

	logging.Debug("verification config loaded",
		"path", path,
		"target_repo", config.TargetRepo,
		"issue_range", fmt.Sprintf("%d-%d", config.IssueMin, config.IssueMax),
		"expectations", len(config.Expectations))

	return config, nil
}

// ParseVerificationConfig parses YAML verification config data. The document
// is walked as a node tree rather than decoded into a map so that
// expected_labels keeps its document order. Required fields are target_repo,
// expected_labels and issue_range; issue_range must be two integers joined
// by a hyphen. The parse is structural only: min greater than max is not
// rejected here.
func ParseVerificationConfig(data []byte) (*VerificationConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("configuration is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("configuration must be a mapping")
	}

	config := &VerificationConfig{SortLabels: true}
	var sawRepo, sawRange, sawLabels bool

	for i := 0; i < len(root.Content)-1; i += 2 {
		key := root.Content[i]
		value := root.Content[i+1]

		switch key.Value {
		case "target_repo":
			if err := value.Decode(&config.TargetRepo); err != nil {
				return nil, fmt.Errorf("invalid target_repo: %w", err)
			}
			sawRepo = true
		case "issue_range":
			var rangeValue string
			if err := value.Decode(&rangeValue); err != nil {
				return nil, fmt.Errorf("invalid issue_range: %w", err)
			}
			issueMin, issueMax, err := parseIssueRange(rangeValue)
			if err != nil {
				return nil, err
			}
			config.IssueMin = issueMin
			config.IssueMax = issueMax
			sawRange = true
		case "sort_labels":
			if err := value.Decode(&config.SortLabels); err != nil {
				return nil, fmt.Errorf("invalid sort_labels: %w", err)
			}
		case "expected_labels":
			expectations, err := parseExpectations(value)
			if err != nil {
				return nil, err
			}
			config.Expectations = expectations
			sawLabels = true
		}
	}

	var missingFields []string
	if !sawRepo {
		missingFields = append(missingFields, "target_repo")
	}
	if !sawLabels {
		missingFields = append(missingFields, "expected_labels")
	}
	if !sawRange {
		missingFields = append(missingFields, "issue_range")
	}
	if len(missingFields) > 0 {
		return nil, fmt.Errorf("missing required fields: %v", missingFields)
	}

	if config.TargetRepo == "" {
		return nil, fmt.Errorf("target_repo cannot be empty")
	}

	return config, nil
}

// parseIssueRange splits a "min-max" string into its integer bounds.
func parseIssueRange(value string) (int, int, error) {
	minPart, maxPart, found := strings.Cut(value, "-")
	if !found {
		return 0, 0, fmt.Errorf("issue_range must have the form 'min-max', got %q", value)
	}

	issueMin, err := strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil {
		return 0, 0, fmt.Errorf("issue_range must have the form 'min-max', got %q", value)
	}
	issueMax, err := strconv.Atoi(strings.TrimSpace(maxPart))
	if err != nil {
		return 0, 0, fmt.Errorf("issue_range must have the form 'min-max', got %q", value)
	}

	return issueMin, issueMax, nil
}

// parseExpectations walks the expected_labels mapping node pair by pair,
// preserving document order. A duplicated item number keeps its first
// position and takes the last value, the way the source document's mapping
// would resolve.
func parseExpectations(node *yaml.Node) ([]Expectation, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected_labels must be a mapping of item numbers to label lists")
	}

	expectations := make([]Expectation, 0, len(node.Content)/2)
	position := make(map[int]int)

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		number, err := strconv.Atoi(keyNode.Value)
		if err != nil {
			return nil, fmt.Errorf("expected_labels key %q is not an integer", keyNode.Value)
		}
		if number <= 0 {
			return nil, fmt.Errorf("expected_labels key %d must be a positive integer", number)
		}

		if valueNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("labels for item %d must be a list of strings", number)
		}
		var labels []string
		if err := valueNode.Decode(&labels); err != nil {
			return nil, fmt.Errorf("labels for item %d must be a list of strings: %w", number, err)
		}
		if labels == nil {
			labels = []string{}
		}
		for _, label := range labels {
			if label == "" {
				return nil, fmt.Errorf("labels for item %d contain an empty string", number)
			}
		}

		if existing, ok := position[number]; ok {
			expectations[existing].Labels = labels
			continue
		}
		position[number] = len(expectations)
		expectations = append(expectations, Expectation{Number: number, Labels: labels})
	}

	return expectations, nil
}
