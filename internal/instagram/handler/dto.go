package handler

import (
	"poap-drops/internal/store"
)

// WebhookPayload is the body Instagram POSTs for messaging events
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

type MessagingEvent struct {
	Sender    Participant     `json:"sender"`
	Recipient Participant     `json:"recipient"`
	Timestamp int64           `json:"timestamp"`
	Message   *InboundMessage `json:"message,omitempty"`
}

type Participant struct {
	ID string `json:"id"`
}

type InboundMessage struct {
	MID     string   `json:"mid"`
	Text    string   `json:"text"`
	IsEcho  bool     `json:"is_echo,omitempty"`
	ReplyTo *ReplyTo `json:"reply_to,omitempty"`
}

type ReplyTo struct {
	MID   string     `json:"mid,omitempty"`
	Story *StoryLink `json:"story,omitempty"`
}

type StoryLink struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// WebhookResponse is returned for every webhook POST
type WebhookResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// storable reports whether the event carries a user-authored text message
func (e MessagingEvent) storable() bool {
	return e.Message != nil && !e.Message.IsEcho && e.Message.MID != "" && e.Message.Text != ""
}

// storyID returns the id of the story the message replies to, if any
func (e MessagingEvent) storyID() *string {
	if e.Message == nil || e.Message.ReplyTo == nil || e.Message.ReplyTo.Story == nil || e.Message.ReplyTo.Story.ID == "" {
		return nil
	}
	id := e.Message.ReplyTo.Story.ID
	return &id
}

func (e MessagingEvent) toParams() store.CreateInstagramMessageParams {
	return store.CreateInstagramMessageParams{
		MessageID: e.Message.MID,
		Text:      e.Message.Text,
		SenderID:  e.Sender.ID,
		StoryID:   e.storyID(),
		Timestamp: e.Timestamp,
	}
}

// DeliveriesQuery are the paging parameters of the deliveries listing
type DeliveriesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
	Page  int `form:"page" binding:"omitempty,min=1"`
}
