package baserow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"art-auction-backend/internal/config"
)

const (
	defaultPage = 1
	defaultSize = 100
)

// Client is a thin typed wrapper around the Baserow row API for the five
// catalog tables. It is stateless aside from its configuration, so a single
// instance is constructed at startup and shared.
type Client struct {
	apiURL     string
	apiToken   string
	tables     config.TableIDs
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		apiURL:   strings.TrimSuffix(cfg.BaserowAPIURL, "/"),
		apiToken: cfg.BaserowAPIToken,
		tables:   cfg.Tables,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) do(method, rawURL string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Token "+c.apiToken)
	}

	c.logger.Debug("baserow request", zap.String("method", method), zap.String("url", rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body), URL: rawURL}
	}

	return body, nil
}

// rowsURL builds the table-level URL. user_field_names keeps cells addressed
// by their original field names, so remote schema reordering cannot break the
// decoders.
func (c *Client) rowsURL(tableID int, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("user_field_names", "true")
	return fmt.Sprintf("%s/api/database/rows/table/%d/?%s", c.apiURL, tableID, params.Encode())
}

func (c *Client) rowURL(tableID, rowID int) string {
	params := url.Values{}
	params.Set("user_field_names", "true")
	return fmt.Sprintf("%s/api/database/rows/table/%d/%d/?%s", c.apiURL, tableID, rowID, params.Encode())
}

func listRows[T any](c *Client, tableID int, p ListParams) (*ListResponse[T], error) {
	if p.Page == 0 {
		p.Page = defaultPage
	}
	if p.Size == 0 {
		p.Size = defaultSize
	}

	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", p.Page))
	params.Set("size", fmt.Sprintf("%d", p.Size))
	params.Set("search", p.Search)

	body, err := c.do(http.MethodGet, c.rowsURL(tableID, params), nil)
	if err != nil {
		return nil, err
	}

	var result ListResponse[T]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &result, nil
}

func getRow[T any](c *Client, tableID, rowID int) (*T, error) {
	body, err := c.do(http.MethodGet, c.rowURL(tableID, rowID), nil)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &result, nil
}

func createRow[T any](c *Client, tableID int, data any) (*T, error) {
	body, err := c.do(http.MethodPost, c.rowsURL(tableID, nil), data)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &result, nil
}

func updateRow[T any](c *Client, tableID, rowID int, data any) (*T, error) {
	body, err := c.do(http.MethodPatch, c.rowURL(tableID, rowID), data)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &result, nil
}

func (c *Client) deleteRow(tableID, rowID int) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("%s/api/database/rows/table/%d/%d/", c.apiURL, tableID, rowID), nil)
	return err
}

// === Lots ===

func (c *Client) ListLots(p ListParams) (*ListResponse[Lot], error) {
	return listRows[Lot](c, c.tables.Lots, p)
}

func (c *Client) GetLotByID(id int) (*Lot, error) {
	return getRow[Lot](c, c.tables.Lots, id)
}

func (c *Client) CreateLot(data map[string]any) (*Lot, error) {
	return createRow[Lot](c, c.tables.Lots, data)
}

func (c *Client) UpdateLot(id int, data map[string]any) (*Lot, error) {
	return updateRow[Lot](c, c.tables.Lots, id, data)
}

func (c *Client) DeleteLot(id int) error {
	return c.deleteRow(c.tables.Lots, id)
}

// === Artists ===

func (c *Client) ListArtists(p ListParams) (*ListResponse[Artist], error) {
	return listRows[Artist](c, c.tables.Artists, p)
}

func (c *Client) GetArtistByID(id int) (*Artist, error) {
	return getRow[Artist](c, c.tables.Artists, id)
}

func (c *Client) CreateArtist(data map[string]any) (*Artist, error) {
	return createRow[Artist](c, c.tables.Artists, data)
}

func (c *Client) UpdateArtist(id int, data map[string]any) (*Artist, error) {
	return updateRow[Artist](c, c.tables.Artists, id, data)
}

func (c *Client) DeleteArtist(id int) error {
	return c.deleteRow(c.tables.Artists, id)
}

// === Auctions ===

func (c *Client) ListAuctions(p ListParams) (*ListResponse[Auction], error) {
	return listRows[Auction](c, c.tables.Auctions, p)
}

func (c *Client) GetAuctionByID(id int) (*Auction, error) {
	return getRow[Auction](c, c.tables.Auctions, id)
}

func (c *Client) CreateAuction(data map[string]any) (*Auction, error) {
	return createRow[Auction](c, c.tables.Auctions, data)
}

func (c *Client) UpdateAuction(id int, data map[string]any) (*Auction, error) {
	return updateRow[Auction](c, c.tables.Auctions, id, data)
}

func (c *Client) DeleteAuction(id int) error {
	return c.deleteRow(c.tables.Auctions, id)
}

// === Bets ===

func (c *Client) ListBets(p ListParams) (*ListResponse[Bet], error) {
	return listRows[Bet](c, c.tables.Bets, p)
}

func (c *Client) GetBetByID(id int) (*Bet, error) {
	return getRow[Bet](c, c.tables.Bets, id)
}

func (c *Client) CreateBet(data map[string]any) (*Bet, error) {
	return createRow[Bet](c, c.tables.Bets, data)
}

func (c *Client) UpdateBet(id int, data map[string]any) (*Bet, error) {
	return updateRow[Bet](c, c.tables.Bets, id, data)
}

func (c *Client) DeleteBet(id int) error {
	return c.deleteRow(c.tables.Bets, id)
}

// === Users ===

func (c *Client) ListUsers(p ListParams) (*ListResponse[User], error) {
	return listRows[User](c, c.tables.Users, p)
}

func (c *Client) GetUserByID(id int) (*User, error) {
	return getRow[User](c, c.tables.Users, id)
}

// GetUserByTelegramID looks a user up by Telegram id. The remote search is
// substring-based, so the results are post-filtered for an exact match.
// Returns nil when no user matches.
func (c *Client) GetUserByTelegramID(telegramID string) (*User, error) {
	resp, err := listRows[User](c, c.tables.Users, ListParams{Search: telegramID})
	if err != nil {
		return nil, err
	}
	for i := range resp.Results {
		if resp.Results[i].TelegramID == telegramID {
			return &resp.Results[i], nil
		}
	}
	return nil, nil
}

func (c *Client) CreateUser(data map[string]any) (*User, error) {
	return createRow[User](c, c.tables.Users, data)
}

func (c *Client) UpdateUser(id int, data map[string]any) (*User, error) {
	return updateRow[User](c, c.tables.Users, id, data)
}

func (c *Client) DeleteUser(id int) error {
	return c.deleteRow(c.tables.Users, id)
}
