package trello

import (
	"context"
	"fmt"
	"strings"

	"github.com/adlio/trello"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/logging"
	"github.com/danielolaszy/labelcheck/internal/verify"
)

// Client fetches card labels from a single Trello board. Item numbers
// are matched against the short card ids Trello assigns per board.
type Client struct {
	client *trello.Client
	board  string

	// Trello cannot address a card by its short id, so the whole board
	// is fetched once and indexed on first use.
	labels map[int][]string
	loaded bool
}

// NewClient creates a new Trello client scoped to a single board name.
func NewClient(cfg config.TrelloConfig, board string) (*Client, error) {
	if cfg.APIKey == "" || cfg.Token == "" {
		return nil, fmt.Errorf("trello configuration incomplete: TRELLO_API_KEY and TRELLO_TOKEN must be set")
	}
	if board == "" {
		return nil, fmt.Errorf("no trello board name provided")
	}

	logging.Debug("creating trello client",
		"api_key", logging.MaskSensitive(cfg.APIKey),
		"token", logging.MaskSensitive(cfg.Token),
		"board", board)

	return &Client{
		client: trello.NewClient(cfg.APIKey, cfg.Token),
		board:  board,
	}, nil
}

// FetchLabels returns the labels of the card whose short id matches the
// given number on the client's board. The Trello API helpers take no
// context, so cancellation is not observed mid-lookup.
func (c *Client) FetchLabels(ctx context.Context, number int) ([]string, error) {
	if !c.loaded {
		if err := c.loadBoard(); err != nil {
			return nil, err
		}
	}

	labels, ok := c.labels[number]
	if !ok {
		return nil, fmt.Errorf("card #%d on board '%s': %w", number, c.board, verify.ErrNotFound)
	}

	logging.Debug("fetched trello labels", "card", number, "labels", labels)
	return labels, nil
}

// loadBoard finds the board by name and indexes its cards by short id.
func (c *Client) loadBoard() error {
	member, err := c.client.GetMember("me", trello.Defaults())
	if err != nil {
		logging.Error("trello request failed", "board", c.board, "error", err)
		return fmt.Errorf("failed to fetch Trello member: %s", verify.TruncateDetail(err.Error()))
	}

	boards, err := member.GetBoards(trello.Defaults())
	if err != nil {
		logging.Error("trello request failed", "board", c.board, "error", err)
		return fmt.Errorf("failed to fetch Trello boards: %s", verify.TruncateDetail(err.Error()))
	}

	var board *trello.Board
	for _, b := range boards {
		if strings.EqualFold(b.Name, c.board) {
			board = b
			break
		}
	}

	if board == nil {
		return fmt.Errorf("board '%s' not found", c.board)
	}

	cards, err := board.GetCards(trello.Defaults())
	if err != nil {
		logging.Error("trello request failed", "board", c.board, "error", err)
		return fmt.Errorf("failed to fetch cards for board '%s': %s",
			c.board, verify.TruncateDetail(err.Error()))
	}

	c.labels = make(map[int][]string, len(cards))
	for _, card := range cards {
		labels := make([]string, 0, len(card.Labels))
		for _, label := range card.Labels {
			labels = append(labels, label.Name)
		}
		c.labels[int(card.IDShort)] = labels
	}
	c.loaded = true

	logging.Debug("indexed trello board", "board", c.board, "cards", len(cards))
	return nil
}
