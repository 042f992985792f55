package poap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"poap-drops/internal/observability"
	"poap-drops/internal/recipient"
)

var (
	ErrNoPoapsAvailable    = errors.New("No POAPs available")
	ErrQrSecretUnavailable = errors.New("QR secret unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected poap api status")
)

// Requester sends authenticated POAP API requests
type Requester interface {
	Do(ctx context.Context, method, url string, body any) (*http.Response, error)
}

// Client talks to the POAP API
type Client struct {
	baseURL string
	auth    Requester
	logger  *observability.Logger
}

// NewClient creates a POAP API client
func NewClient(baseURL string, auth Requester, logger *observability.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		logger:  logger,
	}
}

// QRCode is one mintable code of an event
type QRCode struct {
	QRHash  string `json:"qr_hash"`
	Claimed bool   `json:"claimed"`
}

type qrSecretResponse struct {
	Secret  string `json:"secret"`
	Claimed bool   `json:"claimed"`
}

type claimRequest struct {
	Address   string `json:"address"`
	QRHash    string `json:"qr_hash"`
	Secret    string `json:"secret"`
	SendEmail bool   `json:"sendEmail"`
}

// ClaimData is what a successful claim returns
type ClaimData struct {
	ClaimURL string `json:"claim_url,omitempty"`
	QRHash   string `json:"qr_hash,omitempty"`
}

// DeliveryResult is the outcome of DeliverPOAP. Err is set when Success is false.
type DeliveryResult struct {
	Success bool
	Data    ClaimData
	Error   string
	Err     error
}

func failedDelivery(err error) DeliveryResult {
	return DeliveryResult{Success: false, Error: err.Error(), Err: err}
}

// DeliverPOAP mints one POAP of eventID to r. It lists the event's QR codes, picks
// the first unclaimed one, fetches its secret and claims it. The confirmation
// email is only requested for email recipients.
func (c *Client) DeliverPOAP(ctx context.Context, eventID int64, secretCode string, r recipient.Recipient, sendEmail bool) DeliveryResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "poap_event_id", Value: eventID},
		observability.Field{Key: "recipient_type", Value: string(r.Type)},
	)

	result := c.deliver(ctx, eventID, secretCode, r, sendEmail)
	observability.RecordClaim(result.Success)
	return result
}

func (c *Client) deliver(ctx context.Context, eventID int64, secretCode string, r recipient.Recipient, sendEmail bool) DeliveryResult {
	qrHash, err := c.firstUnclaimedQRCode(ctx, eventID, secretCode)
	if err != nil {
		return failedDelivery(err)
	}

	secret, err := c.qrSecret(ctx, qrHash)
	if err != nil {
		return failedDelivery(err)
	}

	data, err := c.claim(ctx, claimRequest{
		Address:   r.Value,
		QRHash:    qrHash,
		Secret:    secret,
		SendEmail: sendEmail && r.Type == recipient.TypeEmail,
	})
	if err != nil {
		return failedDelivery(err)
	}
	if data.QRHash == "" {
		data.QRHash = qrHash
	}

	c.logger.Info(ctx, "poap claimed")
	return DeliveryResult{Success: true, Data: data}
}

func (c *Client) firstUnclaimedQRCode(ctx context.Context, eventID int64, secretCode string) (string, error) {
	endpoint := fmt.Sprintf("%s/event/%d/qr-codes", c.baseURL, eventID)

	var codes []QRCode
	if err := c.call(ctx, http.MethodPost, endpoint, map[string]string{"secret_code": secretCode}, &codes); err != nil {
		return "", fmt.Errorf("failed to list qr codes: %w", err)
	}

	for _, code := range codes {
		if !code.Claimed && code.QRHash != "" {
			return code.QRHash, nil
		}
	}

	c.logger.Warn(ctx, "no unclaimed qr codes left for event")
	return "", ErrNoPoapsAvailable
}

func (c *Client) qrSecret(ctx context.Context, qrHash string) (string, error) {
	endpoint := fmt.Sprintf("%s/actions/claim-qr?qr_hash=%s", c.baseURL, url.QueryEscape(qrHash))

	var resp qrSecretResponse
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to fetch qr secret: %w", err)
	}
	if resp.Secret == "" {
		return "", ErrQrSecretUnavailable
	}
	return resp.Secret, nil
}

func (c *Client) claim(ctx context.Context, req claimRequest) (ClaimData, error) {
	var data ClaimData
	if err := c.call(ctx, http.MethodPost, c.baseURL+"/actions/claim-qr", req, &data); err != nil {
		return ClaimData{}, fmt.Errorf("failed to claim qr code: %w", err)
	}
	return data, nil
}

// call performs a request and decodes a 2xx JSON body into out
func (c *Client) call(ctx context.Context, method, endpoint string, body any, out any) error {
	resp, err := c.auth.Do(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(raw)))
		c.logger.Error(ctx, "poap api call failed", err)
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
