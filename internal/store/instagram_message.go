package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateInstagramMessageParams represents parameters for storing an inbound message
type CreateInstagramMessageParams struct {
	MessageID      string
	Text           string
	SenderID       string
	SenderUsername *string
	StoryID        *string
	Timestamp      int64
}

const instagramMessageColumns = `id, message_id, text, sender_id, sender_username, story_id, timestamp, processed, processed_at, drop_id, created_at`

const sqlCreateInstagramMessage = `
INSERT INTO instagram_messages (message_id, text, sender_id, sender_username, story_id, timestamp)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + instagramMessageColumns

// CreateInstagramMessage stores an inbound message. Returns ErrDuplicate when the
// message id was already stored.
func (s *Store) CreateInstagramMessage(ctx context.Context, params CreateInstagramMessageParams) (InstagramMessage, error) {
	var message InstagramMessage
	err := s.db.GetContext(ctx, &message, sqlCreateInstagramMessage,
		params.MessageID,
		params.Text,
		params.SenderID,
		params.SenderUsername,
		params.StoryID,
		params.Timestamp)
	if err != nil {
		if isUniqueViolation(err) {
			return InstagramMessage{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create instagram message", err)
		return InstagramMessage{}, fmt.Errorf("failed to create instagram message: %w", err)
	}
	return message, nil
}

const sqlUpdateInstagramMessageUsername = `
UPDATE instagram_messages
SET sender_username = $2
WHERE id = $1
`

// UpdateInstagramMessageUsername records the sender handle resolved from the Graph API
func (s *Store) UpdateInstagramMessageUsername(ctx context.Context, messageID uuid.UUID, username string) error {
	_, err := s.db.ExecContext(ctx, sqlUpdateInstagramMessageUsername, messageID, username)
	if err != nil {
		s.logger.Error(ctx, "failed to update instagram message username", err)
		return fmt.Errorf("failed to update instagram message username: %w", err)
	}
	return nil
}

const sqlMarkInstagramMessageProcessed = `
UPDATE instagram_messages
SET processed = TRUE, processed_at = CURRENT_TIMESTAMP, drop_id = $2
WHERE id = $1
`

// MarkInstagramMessageProcessed flags a message as handled for the given drop
func (s *Store) MarkInstagramMessageProcessed(ctx context.Context, messageID uuid.UUID, dropID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlMarkInstagramMessageProcessed, messageID, dropID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark instagram message processed", err)
		return fmt.Errorf("failed to mark instagram message processed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetUnprocessedInstagramMessagesByStory = `
SELECT ` + instagramMessageColumns + `
FROM instagram_messages
WHERE story_id = $1 AND processed = FALSE
ORDER BY timestamp ASC
`

// GetUnprocessedInstagramMessagesByStory returns the story replies not yet handled, oldest first
func (s *Store) GetUnprocessedInstagramMessagesByStory(ctx context.Context, storyID string) ([]InstagramMessage, error) {
	var messages []InstagramMessage
	err := s.db.SelectContext(ctx, &messages, sqlGetUnprocessedInstagramMessagesByStory, storyID)
	if err != nil {
		s.logger.Error(ctx, "failed to get unprocessed instagram messages", err)
		return nil, fmt.Errorf("failed to get unprocessed instagram messages: %w", err)
	}
	return messages, nil
}
