// Package storetest provides an in-memory store with the same uniqueness
// rules as the Postgres schema, for unit tests.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"poap-drops/internal/store"

	"github.com/google/uuid"
)

// Memory holds drops, messages and deliveries in memory
type Memory struct {
	mu         sync.Mutex
	drops      map[uuid.UUID]store.DropDetails
	messages   map[uuid.UUID]store.InstagramMessage
	deliveries map[uuid.UUID]store.InstagramDelivery
	order      []uuid.UUID

	// Err, when set, is returned by every delivery write
	Err error
}

func NewMemory() *Memory {
	return &Memory{
		drops:      make(map[uuid.UUID]store.DropDetails),
		messages:   make(map[uuid.UUID]store.InstagramMessage),
		deliveries: make(map[uuid.UUID]store.InstagramDelivery),
	}
}

// AddDrop registers a drop with its account and templates
func (m *Memory) AddDrop(details store.DropDetails) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if details.Drop.ID == uuid.Nil {
		details.Drop.ID = uuid.New()
	}
	m.drops[details.Drop.ID] = details
}

func (m *Memory) GetDropByID(_ context.Context, dropID uuid.UUID) (store.Drop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	details, ok := m.drops[dropID]
	if !ok {
		return store.Drop{}, store.ErrNotFound
	}
	return details.Drop, nil
}

func (m *Memory) GetActiveDropByStoryID(_ context.Context, storyID string) (store.Drop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, details := range m.drops {
		d := details.Drop
		if d.IsActive && d.InstagramStoryID != nil && *d.InstagramStoryID == storyID {
			return d, nil
		}
	}
	return store.Drop{}, store.ErrNotFound
}

func (m *Memory) GetDropDetails(_ context.Context, drop store.Drop) (store.DropDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	details, ok := m.drops[drop.ID]
	if !ok {
		return store.DropDetails{}, store.ErrNotFound
	}
	details.Drop = drop
	return details, nil
}

func (m *Memory) CreateInstagramMessage(_ context.Context, params store.CreateInstagramMessageParams) (store.InstagramMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.MessageID == params.MessageID {
			return store.InstagramMessage{}, store.ErrDuplicate
		}
	}
	msg := store.InstagramMessage{
		ID:             uuid.New(),
		MessageID:      params.MessageID,
		Text:           params.Text,
		SenderID:       params.SenderID,
		SenderUsername: params.SenderUsername,
		StoryID:        params.StoryID,
		Timestamp:      params.Timestamp,
		CreatedAt:      time.Now(),
	}
	m.messages[msg.ID] = msg
	return msg, nil
}

func (m *Memory) UpdateInstagramMessageUsername(_ context.Context, messageID uuid.UUID, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[messageID]
	if !ok {
		return store.ErrNotFound
	}
	msg.SenderUsername = &username
	m.messages[messageID] = msg
	return nil
}

func (m *Memory) MarkInstagramMessageProcessed(_ context.Context, messageID uuid.UUID, dropID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[messageID]
	if !ok {
		return store.ErrNotFound
	}
	now := time.Now()
	msg.Processed = true
	msg.ProcessedAt = &now
	msg.DropID = &dropID
	m.messages[messageID] = msg
	return nil
}

func (m *Memory) GetUnprocessedInstagramMessagesByStory(_ context.Context, storyID string) ([]store.InstagramMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.InstagramMessage
	for _, msg := range m.messages {
		if !msg.Processed && msg.StoryID != nil && *msg.StoryID == storyID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

// Message returns a stored message by its row id
func (m *Memory) Message(id uuid.UUID) (store.InstagramMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	return msg, ok
}

// MessageCount returns the number of stored messages
func (m *Memory) MessageCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func (m *Memory) CreateInstagramDelivery(_ context.Context, params store.CreateInstagramDeliveryParams) (store.InstagramDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return store.InstagramDelivery{}, m.Err
	}
	for _, d := range m.deliveries {
		if d.MessageID == params.MessageID {
			return store.InstagramDelivery{}, store.ErrDuplicate
		}
		if d.DropID == params.DropID && d.RecipientType == params.RecipientType && d.RecipientValue == params.RecipientValue {
			return store.InstagramDelivery{}, store.ErrDuplicate
		}
	}
	now := time.Now()
	d := store.InstagramDelivery{
		ID:             uuid.New(),
		DropID:         params.DropID,
		MessageID:      params.MessageID,
		SenderID:       params.SenderID,
		RecipientType:  params.RecipientType,
		RecipientValue: params.RecipientValue,
		DeliveryStatus: store.DeliveryStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.deliveries[d.ID] = d
	m.order = append(m.order, d.ID)
	return d, nil
}

func (m *Memory) GetInstagramDeliveryByRecipient(_ context.Context, dropID uuid.UUID, recipientType, recipientValue string) (store.InstagramDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.deliveries {
		if d.DropID == dropID && d.RecipientType == recipientType && d.RecipientValue == recipientValue {
			return d, nil
		}
	}
	return store.InstagramDelivery{}, store.ErrNotFound
}

func (m *Memory) GetDeliveredInstagramDeliveryBySender(_ context.Context, dropID uuid.UUID, senderID string) (store.InstagramDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *store.InstagramDelivery
	for _, id := range m.order {
		d := m.deliveries[id]
		if d.DropID == dropID && d.SenderID == senderID && d.DeliveryStatus == store.DeliveryStatusDelivered {
			found = &d
		}
	}
	if found == nil {
		return store.InstagramDelivery{}, store.ErrNotFound
	}
	return *found, nil
}

func (m *Memory) MarkInstagramDeliveryDelivered(_ context.Context, deliveryID uuid.UUID, poapLink string) (store.InstagramDelivery, error) {
	return m.transition(deliveryID, func(d *store.InstagramDelivery, now time.Time) {
		d.DeliveryStatus = store.DeliveryStatusDelivered
		d.PoapLink = &poapLink
		d.DeliveredAt = &now
	})
}

func (m *Memory) MarkInstagramDeliveryFailed(_ context.Context, deliveryID uuid.UUID, errorMessage string) (store.InstagramDelivery, error) {
	return m.transition(deliveryID, func(d *store.InstagramDelivery, _ time.Time) {
		d.DeliveryStatus = store.DeliveryStatusFailed
		d.ErrorMessage = &errorMessage
	})
}

func (m *Memory) transition(deliveryID uuid.UUID, apply func(d *store.InstagramDelivery, now time.Time)) (store.InstagramDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.deliveries[deliveryID]
	if !ok || d.DeliveryStatus != store.DeliveryStatusPending {
		return store.InstagramDelivery{}, store.ErrDeliveryNotPending
	}
	now := time.Now()
	apply(&d, now)
	d.UpdatedAt = now
	m.deliveries[deliveryID] = d
	return d, nil
}

func (m *Memory) ListInstagramDeliveriesByDrop(_ context.Context, dropID uuid.UUID, limit, offset int) ([]store.InstagramDelivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []store.InstagramDelivery{}
	for i := len(m.order) - 1; i >= 0; i-- {
		d := m.deliveries[m.order[i]]
		if d.DropID == dropID {
			out = append(out, d)
		}
	}
	if offset >= len(out) {
		return []store.InstagramDelivery{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) CountInstagramDeliveriesByDrop(_ context.Context, dropID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, d := range m.deliveries {
		if d.DropID == dropID {
			count++
		}
	}
	return count, nil
}

// Deliveries returns every delivery recorded for a drop, oldest first
func (m *Memory) Deliveries(dropID uuid.UUID) []store.InstagramDelivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.InstagramDelivery
	for _, id := range m.order {
		if d := m.deliveries[id]; d.DropID == dropID {
			out = append(out, d)
		}
	}
	return out
}
