package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"poap-drops/internal/clients/poap"
	"poap-drops/internal/recipient"
	"poap-drops/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBackfill_ProcessesOldestFirstAndConverges(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.message(t, "3", "c.eth", 3000)
	h.message(t, "1", "a.eth", 1000)
	h.message(t, "2", "b.eth", 2000)

	var order []string
	h.ownership.EXPECT().HasPOAP(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	h.claims.EXPECT().DeliverPOAP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, r recipient.Recipient, _ bool) poap.DeliveryResult {
			order = append(order, r.Value)
			return poap.DeliveryResult{Success: true, Data: poap.ClaimData{QRHash: "qr-" + r.Value}}
		}).Times(3)
	h.replier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(3)
	h.events.EXPECT().EmitDropUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
	h.events.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(3)

	result, err := h.processor.ProcessHistoricalMessagesForDrop(ctx, h.drop.Drop.ID)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{Processed: 3, Delivered: 3, Failed: 0}, result)
	assert.Equal(t, []string{"a.eth", "b.eth", "c.eth"}, order)

	again, err := h.processor.ProcessHistoricalMessagesForDrop(ctx, h.drop.Drop.ID)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{}, again)
}

func TestBackfill_CountsFailuresAndSkips(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.message(t, "1", "no identifier here", 1000)
	h.message(t, "2", "b.eth", 2000)

	h.ownership.EXPECT().HasPOAP(gomock.Any(), "b.eth", gomock.Any()).Return(false, nil)
	h.claims.EXPECT().DeliverPOAP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(poap.DeliveryResult{Success: false, Error: "upstream 502", Err: errors.New("upstream 502")})
	h.replier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	h.events.EXPECT().EmitDropUpdate(gomock.Any(), gomock.Any(), gomock.Any())
	h.events.EXPECT().PublishDeliveryEvent(gomock.Any(), gomock.Any(), gomock.Any())

	result, err := h.processor.ProcessHistoricalMessagesForDrop(ctx, h.drop.Drop.ID)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{Processed: 2, Delivered: 0, Failed: 1}, result)
}

func TestBackfill_InactiveDropIsSkipped(t *testing.T) {
	h := newHarness(t)
	inactive := h.drop
	inactive.Drop.ID = uuid.New()
	inactive.Drop.IsActive = false
	h.mem.AddDrop(inactive)
	h.message(t, "1", "a.eth", 1000)

	result, err := h.processor.ProcessHistoricalMessagesForDrop(context.Background(), inactive.Drop.ID)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{}, result)
}

func TestBackfill_DropWithoutStoryIsSkipped(t *testing.T) {
	h := newHarness(t)
	noStory := h.drop
	noStory.Drop.ID = uuid.New()
	noStory.Drop.InstagramStoryID = nil
	h.mem.AddDrop(noStory)

	result, err := h.processor.ProcessHistoricalMessagesForDrop(context.Background(), noStory.Drop.ID)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{}, result)
}

func TestBackfill_UnknownDrop(t *testing.T) {
	h := newHarness(t)

	_, err := h.processor.ProcessHistoricalMessagesForDrop(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestBackfill_StopsOnCancellation(t *testing.T) {
	h := newHarness(t)
	h.processor.messageDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.message(t, "1", "hello", 1000)
	h.message(t, "2", "still nothing", 2000)

	h.replier.EXPECT().Send(gomock.Any(), gomock.Any(), "1", gomock.Any()).
		DoAndReturn(func(context.Context, string, string, string) bool {
			cancel()
			return true
		})

	result, err := h.processor.ProcessHistoricalMessagesForDrop(ctx, h.drop.Drop.ID)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, result.Processed)
}
