package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"art-auction-backend/internal/baserow"
	"art-auction-backend/internal/config"
)

const (
	testLotsTable     = 1
	testArtistsTable  = 2
	testAuctionsTable = 3
	testBetsTable     = 4
	testUsersTable    = 5
)

// testStore is an in-memory stand-in for the remote table store, served over
// httptest so the real client code path (auth, query params, decoding) is
// exercised.
type testStore struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	requests int

	lots     []baserow.Lot
	artists  []baserow.Artist
	auctions []baserow.Auction
	bets     []baserow.Bet
	users    []baserow.User

	// artist ids whose lookups answer 500
	failArtistIDs map[int]bool

	createdBets   []map[string]any
	createdUsers  []map[string]any
	lastUserPatch map[string]any
}

func newTestStore(t *testing.T) *testStore {
	ts := &testStore{t: t, failArtistIDs: map[int]bool{}}
	ts.srv = httptest.NewServer(http.HandlerFunc(ts.handle))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testStore) client() *baserow.Client {
	cfg := &config.Config{
		BaserowAPIURL: ts.srv.URL,
		Tables: config.TableIDs{
			Lots:     testLotsTable,
			Artists:  testArtistsTable,
			Auctions: testAuctionsTable,
			Bets:     testBetsTable,
			Users:    testUsersTable,
		},
		ArtistFetchConcurrency: 4,
		Port:                   "0",
		Environment:            "test",
	}
	return baserow.NewClient(cfg, zap.NewNop())
}

func (ts *testStore) requestCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.requests
}

func (ts *testStore) handle(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	ts.requests++
	ts.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/database/rows/table/")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	tableID, err := strconv.Atoi(parts[0])
	if err != nil {
		http.Error(w, "bad table", http.StatusBadRequest)
		return
	}

	var rowID int
	hasRow := len(parts) > 1
	if hasRow {
		rowID, _ = strconv.Atoi(parts[1])
	}

	switch {
	case r.Method == http.MethodGet && !hasRow:
		ts.list(w, tableID, r.URL.Query().Get("search"))
	case r.Method == http.MethodGet:
		ts.get(w, tableID, rowID)
	case r.Method == http.MethodPost:
		ts.create(w, r, tableID)
	case r.Method == http.MethodPatch:
		ts.patch(w, r, tableID, rowID)
	default:
		http.Error(w, "unsupported", http.StatusMethodNotAllowed)
	}
}

func (ts *testStore) list(w http.ResponseWriter, tableID int, search string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	switch tableID {
	case testLotsTable:
		writeList(w, ts.lots)
	case testArtistsTable:
		writeList(w, ts.artists)
	case testAuctionsTable:
		writeList(w, ts.auctions)
	case testBetsTable:
		writeList(w, ts.bets)
	case testUsersTable:
		if search == "" {
			writeList(w, ts.users)
			return
		}
		var matched []baserow.User
		for _, u := range ts.users {
			if strings.Contains(u.TelegramID, search) || strings.Contains(u.Username, search) {
				matched = append(matched, u)
			}
		}
		writeList(w, matched)
	default:
		http.NotFound(w, nil)
	}
}

func (ts *testStore) get(w http.ResponseWriter, tableID, rowID int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	switch tableID {
	case testLotsTable:
		for _, lot := range ts.lots {
			if lot.ID == rowID {
				writeJSON(w, lot)
				return
			}
		}
	case testArtistsTable:
		if ts.failArtistIDs[rowID] {
			http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
			return
		}
		for _, artist := range ts.artists {
			if artist.ID == rowID {
				writeJSON(w, artist)
				return
			}
		}
	case testAuctionsTable:
		for _, auction := range ts.auctions {
			if auction.ID == rowID {
				writeJSON(w, auction)
				return
			}
		}
	case testBetsTable:
		for _, bet := range ts.bets {
			if bet.ID == rowID {
				writeJSON(w, bet)
				return
			}
		}
	case testUsersTable:
		for _, user := range ts.users {
			if user.ID == rowID {
				writeJSON(w, user)
				return
			}
		}
	}
	http.Error(w, `{"error": "row does not exist"}`, http.StatusNotFound)
}

func (ts *testStore) create(w http.ResponseWriter, r *http.Request, tableID int) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	switch tableID {
	case testBetsTable:
		ts.createdBets = append(ts.createdBets, data)
		bet := baserow.Bet{
			ID:       1000 + len(ts.createdBets),
			BetValue: stringField(data, "BetValue"),
			Date:     stringField(data, "Date"),
			User:     refsFromPayload(data["User"]),
			Lot:      refsFromPayload(data["Lot"]),
		}
		ts.bets = append(ts.bets, bet)
		writeJSON(w, bet)
	case testUsersTable:
		ts.createdUsers = append(ts.createdUsers, data)
		user := baserow.User{
			ID:           2000 + len(ts.createdUsers),
			Username:     stringField(data, "Username"),
			TelegramID:   stringField(data, "TelegramID"),
			ProfileImage: stringField(data, "ProfileImage"),
		}
		ts.users = append(ts.users, user)
		writeJSON(w, user)
	default:
		http.Error(w, "unsupported", http.StatusBadRequest)
	}
}

func (ts *testStore) patch(w http.ResponseWriter, r *http.Request, tableID, rowID int) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if tableID != testUsersTable {
		http.Error(w, "unsupported", http.StatusBadRequest)
		return
	}

	ts.lastUserPatch = data
	for i := range ts.users {
		if ts.users[i].ID != rowID {
			continue
		}
		if v, ok := data["Username"].(string); ok {
			ts.users[i].Username = v
		}
		if v, ok := data["TelegramID"].(string); ok {
			ts.users[i].TelegramID = v
		}
		if v, ok := data["ProfileImage"].(string); ok {
			ts.users[i].ProfileImage = v
		}
		if v, ok := data["PhoneNumber"].(string); ok {
			ts.users[i].PhoneNumber = &v
		}
		writeJSON(w, ts.users[i])
		return
	}
	http.Error(w, `{"error": "row does not exist"}`, http.StatusNotFound)
}

func writeList[T any](w http.ResponseWriter, rows []T) {
	if rows == nil {
		rows = []T{}
	}
	writeJSON(w, baserow.ListResponse[T]{Count: len(rows), Results: rows})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func refsFromPayload(v any) []baserow.Reference {
	items, _ := v.([]any)
	refs := make([]baserow.Reference, 0, len(items))
	for _, item := range items {
		m, _ := item.(map[string]any)
		id, _ := m["id"].(float64)
		refs = append(refs, baserow.Reference{ID: int(id)})
	}
	return refs
}

func strPtr(s string) *string { return &s }
