package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

func n(id string, read bool, at time.Time) models.Notification {
	return models.Notification{ID: id, Title: "t-" + id, IsRead: read, CreatedAt: at}
}

func TestReplace_DerivesUnreadCount(t *testing.T) {
	c := NewCache()
	now := time.Now()

	c.Replace([]models.Notification{
		n("3", false, now),
		n("2", true, now.Add(-time.Minute)),
		n("1", false, now.Add(-time.Hour)),
	})

	assert.Equal(t, 2, c.Unread())
	require.Len(t, c.Items(), 3)
	assert.Equal(t, "3", c.Items()[0].ID)
}

func TestMerge_DeduplicatesAndPrepends(t *testing.T) {
	c := NewCache()
	now := time.Now()
	c.Replace([]models.Notification{n("2", false, now), n("1", true, now.Add(-time.Hour))})

	added, addedUnread := c.Merge([]models.Notification{
		n("4", false, now.Add(2*time.Minute)),
		n("3", true, now.Add(time.Minute)),
		n("2", false, now), // already cached, must not double-count
	})

	assert.Equal(t, 2, added)
	assert.Equal(t, 1, addedUnread)
	assert.Equal(t, 2, c.Unread())

	items := c.Items()
	require.Len(t, items, 4)
	assert.Equal(t, []string{"4", "3", "2", "1"},
		[]string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
}

func TestMerge_NothingNewIsNoop(t *testing.T) {
	c := NewCache()
	c.Replace([]models.Notification{n("1", false, time.Now())})

	calls := 0
	cancel := c.Subscribe(func() { calls++ })
	defer cancel()

	added, addedUnread := c.Merge([]models.Notification{n("1", false, time.Now())})
	assert.Zero(t, added)
	assert.Zero(t, addedUnread)
	assert.Zero(t, calls)
}

func TestMarkRead_Idempotent(t *testing.T) {
	c := NewCache()
	c.Replace([]models.Notification{n("1", false, time.Now())})

	assert.True(t, c.MarkRead("1"))
	assert.Equal(t, 0, c.Unread())

	// Repeat and unknown IDs change nothing.
	assert.False(t, c.MarkRead("1"))
	assert.False(t, c.MarkRead("missing"))
	assert.Equal(t, 0, c.Unread())
}

func TestUnread_NeverNegative(t *testing.T) {
	c := NewCache()
	c.Replace([]models.Notification{n("1", false, time.Now())})

	for i := 0; i < 3; i++ {
		c.MarkRead("1")
	}
	assert.Equal(t, 0, c.Unread())
}

func TestUnreadIDs_SkipsRead(t *testing.T) {
	c := NewCache()
	now := time.Now()
	c.Replace([]models.Notification{
		n("3", false, now),
		n("2", true, now.Add(-time.Minute)),
		n("1", false, now.Add(-time.Hour)),
	})

	assert.Equal(t, []string{"3", "1"}, c.UnreadIDs())
}

func TestAdvance_MonotonicWatermark(t *testing.T) {
	c := NewCache()

	_, ok := c.Since()
	assert.False(t, ok)

	t1 := time.Now()
	c.Advance(t1)
	got, ok := c.Since()
	require.True(t, ok)
	assert.Equal(t, t1, got)

	// Moving backwards is ignored.
	c.Advance(t1.Add(-time.Hour))
	got, _ = c.Since()
	assert.Equal(t, t1, got)
}

func TestSubscribe_NotifiedOnMutations(t *testing.T) {
	c := NewCache()
	calls := 0
	cancel := c.Subscribe(func() { calls++ })

	c.Replace([]models.Notification{n("1", false, time.Now())})
	c.Merge([]models.Notification{n("2", false, time.Now())})
	c.MarkRead("1")
	assert.Equal(t, 3, calls)

	cancel()
	c.MarkRead("2")
	assert.Equal(t, 3, calls)
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := NewCache()
	c.Replace([]models.Notification{n("1", false, time.Now())})

	items := c.Items()
	items[0].IsRead = true

	assert.False(t, c.Items()[0].IsRead)
	assert.Equal(t, 1, c.Unread())
}
