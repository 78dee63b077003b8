package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestHub_SubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("2024-06-10")
	defer sub.Close()

	assert.True(t, hub.HasSubscribers("2024-06-10"))
	assert.False(t, hub.HasSubscribers("2024-06-11"))

	snapshot := []*domain.Sale{
		{ID: "s1", ItemName: "Café", Price: 20000, SaleDate: "2024-06-10"},
	}
	hub.Publish("2024-06-10", snapshot)

	received := <-sub.C
	require.Len(t, received, 1)
	assert.Equal(t, "s1", received[0].ID)
}

func TestHub_PublishOnlyReachesSubscribedDate(t *testing.T) {
	hub := NewHub()

	subMonday := hub.Subscribe("2024-06-10")
	defer subMonday.Close()

	subTuesday := hub.Subscribe("2024-06-11")
	defer subTuesday.Close()

	hub.Publish("2024-06-10", []*domain.Sale{{ID: "s1", SaleDate: "2024-06-10"}})

	received := <-subMonday.C
	assert.Len(t, received, 1)

	select {
	case <-subTuesday.C:
		t.Fatal("assinante de outra data não deveria receber o snapshot")
	default:
	}
}

func TestHub_SlowSubscriberKeepsLatestSnapshot(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("2024-06-10")
	defer sub.Close()

	// Encher o canal além do buffer: os mais antigos caem, o último fica
	for i := 0; i < snapshotBuffer+3; i++ {
		hub.Publish("2024-06-10", []*domain.Sale{
			{ID: "s1", Price: int64(i), SaleDate: "2024-06-10"},
		})
	}

	var last []*domain.Sale
	for {
		select {
		case snapshot := <-sub.C:
			last = snapshot
			continue
		default:
		}
		break
	}

	require.NotNil(t, last)
	assert.Equal(t, int64(snapshotBuffer+2), last[0].Price)
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe("2024-06-10")
	assert.Equal(t, "2024-06-10", sub.Date())

	sub.Close()
	sub.Close()

	assert.False(t, hub.HasSubscribers("2024-06-10"))

	_, open := <-sub.C
	assert.False(t, open)
}

func TestHub_CloseRemovesOnlyOneSubscriber(t *testing.T) {
	hub := NewHub()

	first := hub.Subscribe("2024-06-10")
	second := hub.Subscribe("2024-06-10")

	first.Close()
	assert.True(t, hub.HasSubscribers("2024-06-10"))

	hub.Publish("2024-06-10", []*domain.Sale{{ID: "s1", SaleDate: "2024-06-10"}})
	received := <-second.C
	assert.Len(t, received, 1)

	second.Close()
	assert.False(t, hub.HasSubscribers("2024-06-10"))
}
