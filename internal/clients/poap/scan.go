package poap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// HasPOAP reports whether recipientValue already holds a POAP of eventID.
// An unknown recipient (404) does not hold it.
func (c *Client) HasPOAP(ctx context.Context, recipientValue string, eventID int64) (bool, error) {
	endpoint := fmt.Sprintf("%s/actions/scan/%s/%d", c.baseURL, url.PathEscape(recipientValue), eventID)

	resp, err := c.auth.Do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read scan response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(raw))
	}

	// Some scan responses list the holder's tokens; an empty list means no token
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var tokens []json.RawMessage
		if err := json.Unmarshal(trimmed, &tokens); err != nil {
			return false, fmt.Errorf("failed to decode scan response: %w", err)
		}
		return len(tokens) > 0, nil
	}

	return true, nil
}
