package trello

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adlio/trello"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/internal/verify"
)

func TestNewClientValidation(t *testing.T) {
	testCases := []struct {
		name  string
		cfg   config.TrelloConfig
		board string
	}{
		{
			name:  "Missing API key",
			cfg:   config.TrelloConfig{Token: "token"},
			board: "Eval Board",
		},
		{
			name:  "Missing token",
			cfg:   config.TrelloConfig{APIKey: "key"},
			board: "Eval Board",
		},
		{
			name:  "Missing board",
			cfg:   config.TrelloConfig{APIKey: "key", Token: "token"},
			board: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewClient(tc.cfg, tc.board); err == nil {
				t.Error("expected an error for incomplete configuration")
			}
		})
	}
}

// newTestServer serves a fixed member with one board of two cards and
// counts how often the card listing is requested.
func newTestServer(cardRequests *int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/members/me", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "member1", "username": "tester"}`)
	})
	mux.HandleFunc("/members/member1/boards", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": "board1", "name": "Eval Board"}, {"id": "board2", "name": "Other Board"}]`)
	})
	mux.HandleFunc("/boards/board1/cards", func(w http.ResponseWriter, r *http.Request) {
		if cardRequests != nil {
			*cardRequests++
		}
		fmt.Fprint(w, `[
			{"id": "card1", "idShort": 4, "name": "First", "labels": [{"id": "l1", "name": "bug"}, {"id": "l2", "name": "verified"}]},
			{"id": "card2", "idShort": 7, "name": "Second", "labels": []}
		]`)
	})
	return httptest.NewServer(mux)
}

// newTestClient returns a Client whose API calls are served by the given
// fake server.
func newTestClient(server *httptest.Server, board string) *Client {
	tc := trello.NewClient("key", "token")
	tc.BaseURL = server.URL
	return &Client{
		client: tc,
		board:  board,
	}
}

func TestFetchLabels(t *testing.T) {
	var cardRequests int
	server := newTestServer(&cardRequests)
	defer server.Close()

	client := newTestClient(server, "Eval Board")

	labels, err := client.FetchLabels(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 || labels[0] != "bug" || labels[1] != "verified" {
		t.Errorf("expected [bug verified], got %v", labels)
	}

	labels, err = client.FetchLabels(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if labels == nil {
		t.Fatal("expected a non-nil label list for an unlabeled card")
	}
	if len(labels) != 0 {
		t.Errorf("expected no labels, got %v", labels)
	}

	if cardRequests != 1 {
		t.Errorf("expected the board to be fetched once, got %d requests", cardRequests)
	}
}

func TestFetchLabelsBoardNameCase(t *testing.T) {
	server := newTestServer(nil)
	defer server.Close()

	client := newTestClient(server, "eval board")

	labels, err := client.FetchLabels(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 {
		t.Errorf("expected 2 labels, got %v", labels)
	}
}

func TestFetchLabelsNotFound(t *testing.T) {
	server := newTestServer(nil)
	defer server.Close()

	client := newTestClient(server, "Eval Board")

	_, err := client.FetchLabels(context.Background(), 99)
	if !errors.Is(err, verify.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "#99") {
		t.Errorf("expected the error to name the card, got %v", err)
	}
}

func TestFetchLabelsBoardMissing(t *testing.T) {
	server := newTestServer(nil)
	defer server.Close()

	client := newTestClient(server, "No Such Board")

	_, err := client.FetchLabels(context.Background(), 4)
	if err == nil {
		t.Fatal("expected an error for an unknown board")
	}
	if errors.Is(err, verify.ErrNotFound) {
		t.Fatal("a missing board must not look like a missing card")
	}
	if !strings.Contains(err.Error(), "board 'No Such Board' not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFetchLabelsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "internal error")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server, "Eval Board")

	_, err := client.FetchLabels(context.Background(), 4)
	if err == nil {
		t.Fatal("expected an error for a failing API")
	}
	if errors.Is(err, verify.ErrNotFound) {
		t.Fatal("a server error must not look like a missing card")
	}
	if !strings.Contains(err.Error(), "failed to fetch Trello member") {
		t.Errorf("unexpected error: %v", err)
	}
}
