// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// SetupTestDB creates a fresh SQLite database with the full schema in a
// per-test temp directory. The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration backed by a temp
// SQLite file
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         8001,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "test.db"),
	}
}

// CreateTestPoll creates a poll with one option per title and returns it
func CreateTestPoll(t *testing.T, conn *sql.DB, title string, optionTitles ...string) *models.Poll {
	t.Helper()

	poll := &models.Poll{
		Title:       title,
		Description: "A test poll",
	}
	for _, ot := range optionTitles {
		poll.Options = append(poll.Options, models.Option{Title: ot})
	}

	created, err := store.NewPollStore(conn).Create(context.Background(), poll)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return created
}

// CastTestVotes records n votes for an option from distinct voter addresses
// derived from prefix
func CastTestVotes(t *testing.T, conn *sql.DB, pollID, optionID, prefix string, n int) {
	t.Helper()

	votes := store.NewVoteStore(conn)
	for i := 0; i < n; i++ {
		voter := fmt.Sprintf("%s-%d", prefix, i)
		if _, err := votes.Cast(context.Background(), pollID, optionID, voter); err != nil {
			t.Fatalf("Failed to cast test vote: %v", err)
		}
	}
}

// CountVotes returns the number of vote rows stored for a poll
func CountVotes(t *testing.T, conn *sql.DB, pollID string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
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

// AssertErrorKind decodes an error body and checks its kind
func AssertErrorKind(t *testing.T, w *httptest.ResponseRecorder, kind models.ErrorKind) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Kind != kind {
		t.Errorf("Expected error kind %q, got %q (detail %q)", kind, resp.Kind, resp.Detail)
	}
	if resp.Detail == "" {
		t.Error("Expected non-empty detail")
	}
	return resp
}
