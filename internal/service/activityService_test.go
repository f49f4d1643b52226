package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"mbg-project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_HandleActivityMessage(t *testing.T) {
	svc := NewActivityService()

	event := models.ActivityEvent{
		ID:        "evt1",
		Type:      models.ActivityTransaction,
		Title:     "Pembayaran Baru",
		User:      "Admin",
		Timestamp: time.Now(),
	}
	data, _ := json.Marshal(event)

	require.NoError(t, svc.HandleActivityMessage(context.Background(), data))

	recent := svc.Recent(context.Background())
	require.Len(t, recent, 1)
	assert.Equal(t, "evt1", recent[0].ID)
}

func TestActivityService_RejectsMalformedPayload(t *testing.T) {
	svc := NewActivityService()

	err := svc.HandleActivityMessage(context.Background(), []byte("{broken"))

	require.Error(t, err)
	assert.Empty(t, svc.Recent(context.Background()))
}

func TestActivityService_NewestFirstAndBounded(t *testing.T) {
	svc := NewActivityService()
	svc.limit = 3

	for i := 0; i < 5; i++ {
		data, _ := json.Marshal(models.ActivityEvent{ID: fmt.Sprintf("evt%d", i)})
		require.NoError(t, svc.HandleActivityMessage(context.Background(), data))
	}

	recent := svc.Recent(context.Background())
	require.Len(t, recent, 3)
	assert.Equal(t, "evt4", recent[0].ID)
	assert.Equal(t, "evt3", recent[1].ID)
	assert.Equal(t, "evt2", recent[2].ID)
}
