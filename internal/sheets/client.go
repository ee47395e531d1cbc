// Package sheets talks to the Google Apps Script endpoint that fronts the
// reservation spreadsheet. It is the only place loosely-typed sheet data is
// decoded; everything past this boundary is a typed models.Reservation.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/solterra/reservas/internal/constants"
	"github.com/solterra/reservas/internal/logger"
	"github.com/solterra/reservas/internal/models"
)

// Apps Script web apps reject preflighted requests, so writes go out as
// text/plain exactly like the browser original did.
const postContentType = "text/plain;charset=utf-8"

type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

// New creates a client for the given Apps Script endpoint URL. The timeout
// bounds every request; the endpoint otherwise never times out on its own.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		now:  time.Now,
	}
}

type command struct {
	Action      string        `json:"action"`
	Reservation *models.Draft `json:"reservation,omitempty"`
	ID          string        `json:"id,omitempty"`
	Arrived     *bool         `json:"arrived,omitempty"`
}

type commandResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// List fetches every reservation row from the sheet. The t query parameter
// busts the Apps Script response cache.
func (c *Client) List(ctx context.Context) ([]models.Reservation, error) {
	const op = "list"
	reqID := uuid.NewString()

	url := c.url + "?t=" + strconv.FormatInt(c.now().UnixMilli(), 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	logger.Debug("sheet request", "op", op, "req_id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("sheet request failed", "op", op, "req_id", reqID, "error", err)
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}

	var raws []rawReservation
	if err := json.Unmarshal(body, &raws); err != nil {
		// Not an array: the endpoint reports failures as {"error": "..."}.
		var failure struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(body, &failure); jsonErr == nil && failure.Error != "" {
			return nil, &ProtocolError{Op: op, Message: failure.Error}
		}
		return nil, &ProtocolError{Op: op, Message: fmt.Sprintf("malformed response: %v", err)}
	}

	reservations := make([]models.Reservation, len(raws))
	for i, raw := range raws {
		reservations[i] = raw.Normalize()
	}
	logger.Debug("sheet response", "op", op, "req_id", reqID, "rows", len(reservations))
	return reservations, nil
}

// Create appends a new reservation row. The sheet assigns the id; the only
// way to learn it is to list again.
func (c *Client) Create(ctx context.Context, draft models.Draft) error {
	return c.post(ctx, "create", command{
		Action:      constants.ActionAddReservation,
		Reservation: &draft,
	})
}

// SetArrived updates the arrived cell of a single row.
func (c *Client) SetArrived(ctx context.Context, id string, arrived bool) error {
	return c.post(ctx, "set-arrived", command{
		Action:  constants.ActionUpdateStatus,
		ID:      id,
		Arrived: &arrived,
	})
}

func (c *Client) post(ctx context.Context, op string, cmd command) error {
	reqID := uuid.NewString()

	payload, err := json.Marshal(cmd)
	if err != nil {
		return &ProtocolError{Op: op, Message: fmt.Sprintf("encoding command: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", postContentType)

	logger.Debug("sheet request", "op", op, "req_id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("sheet request failed", "op", op, "req_id", reqID, "error", err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var result commandResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &ProtocolError{Op: op, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	if result.Status != constants.StatusSuccess {
		msg := result.Message
		if msg == "" {
			msg = fmt.Sprintf("endpoint returned status %q", result.Status)
		}
		return &ProtocolError{Op: op, Message: msg}
	}
	return nil
}
