package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = strings.Split(str, ",")
	return nil
}

// Contains reports whether s is one of the array values.
func (a StringArray) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// Drop represents a configured POAP delivery campaign bound to one Instagram story
type Drop struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	Name               string      `db:"name" json:"name"`
	PoapEventID        int64       `db:"poap_event_id" json:"poap_event_id"`
	PoapSecretCode     string      `db:"poap_secret_code" json:"-"`
	InstagramStoryID   *string     `db:"instagram_story_id" json:"instagram_story_id,omitempty"`
	InstagramStoryURL  *string     `db:"instagram_story_url" json:"instagram_story_url,omitempty"`
	InstagramAccountID uuid.UUID   `db:"instagram_account_id" json:"instagram_account_id"`
	AcceptedFormats    StringArray `db:"accepted_formats" json:"accepted_formats"`
	SendPoapEmail      bool        `db:"send_poap_email" json:"send_poap_email"`
	IsActive           bool        `db:"is_active" json:"is_active"`
	CreatedAt          time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updated_at"`
}

// InstagramAccount holds the credentials used to reply on behalf of a business account
type InstagramAccount struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	InstagramID string     `db:"instagram_id" json:"instagram_id"`
	Username    *string    `db:"username" json:"username,omitempty"`
	AccessToken string     `db:"access_token" json:"-"`
	ExpiresAt   *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// InstagramDropMessages holds the reply templates for a drop.
// Templates may contain the {{recipient}} placeholder.
type InstagramDropMessages struct {
	DropID                uuid.UUID `db:"drop_id" json:"drop_id"`
	SuccessMessage        string    `db:"success_message" json:"success_message"`
	AlreadyClaimedMessage string    `db:"already_claimed_message" json:"already_claimed_message"`
	InvalidFormatMessage  string    `db:"invalid_format_message" json:"invalid_format_message"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// DropDetails bundles a drop with the account and templates needed to process replies
type DropDetails struct {
	Drop     Drop
	Account  InstagramAccount
	Messages InstagramDropMessages
}

// InstagramMessage represents one inbound webhook message
type InstagramMessage struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	MessageID      string     `db:"message_id" json:"message_id"`
	Text           string     `db:"text" json:"text"`
	SenderID       string     `db:"sender_id" json:"sender_id"`
	SenderUsername *string    `db:"sender_username" json:"sender_username,omitempty"`
	StoryID        *string    `db:"story_id" json:"story_id,omitempty"`
	Timestamp      int64      `db:"timestamp" json:"timestamp"`
	Processed      bool       `db:"processed" json:"processed"`
	ProcessedAt    *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	DropID         *uuid.UUID `db:"drop_id" json:"drop_id,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// InstagramDelivery represents one POAP delivery outcome
type InstagramDelivery struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	DropID         uuid.UUID  `db:"drop_id" json:"drop_id"`
	MessageID      uuid.UUID  `db:"message_id" json:"message_id"`
	SenderID       string     `db:"sender_id" json:"sender_id"`
	RecipientType  string     `db:"recipient_type" json:"recipient_type"`
	RecipientValue string     `db:"recipient_value" json:"recipient_value"`
	DeliveryStatus string     `db:"delivery_status" json:"delivery_status"`
	PoapLink       *string    `db:"poap_link" json:"poap_link,omitempty"`
	ErrorMessage   *string    `db:"error_message" json:"error_message,omitempty"`
	DeliveredAt    *time.Time `db:"delivered_at" json:"delivered_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
