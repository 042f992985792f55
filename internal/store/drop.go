package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const dropColumns = `id, name, poap_event_id, poap_secret_code, instagram_story_id, instagram_story_url, instagram_account_id, accepted_formats, send_poap_email, is_active, created_at, updated_at`

const sqlGetDropByID = `
SELECT ` + dropColumns + `
FROM drops
WHERE id = $1
`

// GetDropByID retrieves a drop by ID
func (s *Store) GetDropByID(ctx context.Context, dropID uuid.UUID) (Drop, error) {
	var drop Drop
	err := s.db.GetContext(ctx, &drop, sqlGetDropByID, dropID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Drop{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get drop", err)
		return Drop{}, fmt.Errorf("failed to get drop: %w", err)
	}
	return drop, nil
}

const sqlGetActiveDropByStoryID = `
SELECT ` + dropColumns + `
FROM drops
WHERE instagram_story_id = $1 AND is_active = TRUE
`

// GetActiveDropByStoryID retrieves the active drop bound to an Instagram story
func (s *Store) GetActiveDropByStoryID(ctx context.Context, storyID string) (Drop, error) {
	var drop Drop
	err := s.db.GetContext(ctx, &drop, sqlGetActiveDropByStoryID, storyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Drop{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get active drop by story", err)
		return Drop{}, fmt.Errorf("failed to get active drop by story: %w", err)
	}
	return drop, nil
}

const sqlGetInstagramAccountByID = `
SELECT id, instagram_id, username, access_token, expires_at, created_at, updated_at
FROM instagram_accounts
WHERE id = $1
`

// GetInstagramAccountByID retrieves the business account a drop replies from
func (s *Store) GetInstagramAccountByID(ctx context.Context, accountID uuid.UUID) (InstagramAccount, error) {
	var account InstagramAccount
	err := s.db.GetContext(ctx, &account, sqlGetInstagramAccountByID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InstagramAccount{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get instagram account", err)
		return InstagramAccount{}, fmt.Errorf("failed to get instagram account: %w", err)
	}
	return account, nil
}

const sqlGetDropMessages = `
SELECT drop_id, success_message, already_claimed_message, invalid_format_message, created_at, updated_at
FROM instagram_drop_messages
WHERE drop_id = $1
`

// GetDropMessages retrieves the reply templates of a drop
func (s *Store) GetDropMessages(ctx context.Context, dropID uuid.UUID) (InstagramDropMessages, error) {
	var messages InstagramDropMessages
	err := s.db.GetContext(ctx, &messages, sqlGetDropMessages, dropID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InstagramDropMessages{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get drop messages", err)
		return InstagramDropMessages{}, fmt.Errorf("failed to get drop messages: %w", err)
	}
	return messages, nil
}

// GetDropDetails loads a drop with its account and reply templates
func (s *Store) GetDropDetails(ctx context.Context, drop Drop) (DropDetails, error) {
	account, err := s.GetInstagramAccountByID(ctx, drop.InstagramAccountID)
	if err != nil {
		return DropDetails{}, err
	}

	messages, err := s.GetDropMessages(ctx, drop.ID)
	if err != nil {
		return DropDetails{}, err
	}

	return DropDetails{
		Drop:     drop,
		Account:  account,
		Messages: messages,
	}, nil
}
