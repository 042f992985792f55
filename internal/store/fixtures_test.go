//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func createTestAccount(t *testing.T, testDB *TestDB) InstagramAccount {
	t.Helper()

	var account InstagramAccount
	err := testDB.db.Get(&account, `
		INSERT INTO instagram_accounts (instagram_id, username, access_token)
		VALUES ($1, 'organizer', 'page-token')
		RETURNING id, instagram_id, username, access_token, expires_at, created_at, updated_at`,
		"ig-"+uuid.NewString()[:8])
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

func createTestDrop(t *testing.T, testDB *TestDB, storyID string, active bool) Drop {
	t.Helper()

	account := createTestAccount(t, testDB)

	var drop Drop
	err := testDB.db.Get(&drop, `
		INSERT INTO drops (name, poap_event_id, poap_secret_code, instagram_story_id, instagram_account_id, accepted_formats, is_active)
		VALUES ('Test Drop', 12345, '123456', $1, $2, '{email,address,ens}', $3)
		RETURNING `+dropColumns,
		storyID, account.ID, active)
	if err != nil {
		t.Fatalf("failed to create test drop: %v", err)
	}

	testDB.MustExec(t, `
		INSERT INTO instagram_drop_messages (drop_id, success_message, already_claimed_message, invalid_format_message)
		VALUES ($1, 'Sent to {{recipient}}', '{{recipient}} already claimed', 'Reply with an email, address or ENS')`,
		drop.ID)

	return drop
}

func createTestMessage(t *testing.T, testDB *TestDB, storyID string, timestamp int64) InstagramMessage {
	t.Helper()

	message, err := testDB.Store.CreateInstagramMessage(context.Background(), CreateInstagramMessageParams{
		MessageID: "mid." + uuid.NewString(),
		Text:      "vitalik.eth",
		SenderID:  "sender-" + uuid.NewString()[:8],
		StoryID:   &storyID,
		Timestamp: timestamp,
	})
	if err != nil {
		t.Fatalf("failed to create test message: %v", err)
	}
	return message
}
