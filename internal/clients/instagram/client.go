package instagram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"poap-drops/internal/observability"
)

var ErrGraphRequestFailed = errors.New("instagram graph request failed")

// Client calls the Instagram Graph API on behalf of a business account
type Client struct {
	baseURL    string
	version    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a Graph API client
func NewClient(baseURL, version string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		version: version,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type sendMessageRequest struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// GetUsername resolves the handle of an Instagram-scoped user id
func (c *Client) GetUsername(ctx context.Context, accessToken, userID string) (string, error) {
	q := url.Values{}
	q.Set("fields", "username")
	q.Set("access_token", accessToken)
	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.version, url.PathEscape(userID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	var user userResponse
	if err := c.do(ctx, req, &user); err != nil {
		return "", fmt.Errorf("failed to get username: %w", err)
	}
	return user.Username, nil
}

// SendMessage sends a direct message to recipientID
func (c *Client) SendMessage(ctx context.Context, accessToken, recipientID, text string) error {
	var body sendMessageRequest
	body.Recipient.ID = recipientID
	body.Message.Text = text

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	q := url.Values{}
	q.Set("access_token", accessToken)
	endpoint := fmt.Sprintf("%s/%s/me/messages?%s", c.baseURL, c.version, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(ctx, req, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call instagram graph api", err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ge graphError
		message := string(raw)
		if json.Unmarshal(raw, &ge) == nil && ge.Error.Message != "" {
			message = ge.Error.Message
		}
		return fmt.Errorf("%w: status %d: %s", ErrGraphRequestFailed, resp.StatusCode, message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
