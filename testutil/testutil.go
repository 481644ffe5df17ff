// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"livepoll/db"
	"livepoll/ident"
	"livepoll/models"
)

// SetupTestDB creates a fresh sqlite database with the full schema. Each
// test gets its own file under t.TempDir, so no cleanup or cross-test
// state to worry about.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "livepoll_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestPoll builds an in-memory poll fixture with the given option
// texts, counters at zero.
func NewTestPoll(t *testing.T, question string, optionTexts ...string) models.Poll {
	t.Helper()

	pollID, err := ident.NewPollID()
	if err != nil {
		t.Fatalf("Failed to generate poll id: %v", err)
	}

	opts := make([]models.Option, len(optionTexts))
	for i, text := range optionTexts {
		id, err := ident.NewID(12)
		if err != nil {
			t.Fatalf("Failed to generate option id: %v", err)
		}
		opts[i] = models.Option{ID: id, Text: text}
	}

	now := time.Now()
	return models.Poll{
		ID:        pollID,
		Question:  question,
		Options:   opts,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestPoll persists a fixture poll into any PollStore-shaped target.
func CreateTestPoll(t *testing.T, target interface {
	Create(ctx context.Context, p models.Poll) error
}, question string, optionTexts ...string) models.Poll {
	t.Helper()

	poll := NewTestPoll(t, question, optionTexts...)
	if err := target.Create(context.Background(), poll); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// PublisherSpy records broadcasts; it satisfies vote.Publisher.
type PublisherSpy struct {
	mu          sync.Mutex
	published   []models.Poll
	listChanges int
}

func (p *PublisherSpy) Publish(poll models.Poll) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, poll)
}

func (p *PublisherSpy) PublishListChanged() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listChanges++
}

// Published returns a copy of the recorded poll snapshots.
func (p *PublisherSpy) Published() []models.Poll {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Poll(nil), p.published...)
}

// ListChanges returns how many list-changed signals were recorded.
func (p *PublisherSpy) ListChanges() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listChanges
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
