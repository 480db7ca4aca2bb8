// Package notifications keeps the local, newest-first mirror of the current
// user's notifications. The server owns the data; the cache only tracks what
// has been seen and which items were marked read locally.
package notifications

import (
	"sync"
	"time"

	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

// Cache is the in-memory notification mirror. The unread count is derived
// from the items and never goes negative.
type Cache struct {
	mu       sync.Mutex
	items    []models.Notification
	unread   int
	lastPoll time.Time
	subs     map[int]func()
	nextSub  int
}

func NewCache() *Cache {
	return &Cache{subs: map[int]func(){}}
}

// Replace resets the mirror to the given snapshot. Items are assumed to be
// newest-first, as the server returns them.
func (c *Cache) Replace(items []models.Notification) {
	c.mu.Lock()
	c.items = append([]models.Notification(nil), items...)
	c.unread = 0
	for _, n := range c.items {
		if !n.IsRead {
			c.unread++
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Merge prepends items not already present, deduplicated by ID. It returns
// how many items were new and how many of those were unread.
func (c *Cache) Merge(items []models.Notification) (added, addedUnread int) {
	c.mu.Lock()
	seen := make(map[string]struct{}, len(c.items))
	for _, n := range c.items {
		seen[n.ID] = struct{}{}
	}

	var fresh []models.Notification
	for _, n := range items {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		fresh = append(fresh, n)
		if !n.IsRead {
			addedUnread++
		}
	}
	added = len(fresh)
	c.items = append(fresh, c.items...)
	c.unread += addedUnread
	c.mu.Unlock()

	if added > 0 {
		c.notify()
	}
	return added, addedUnread
}

// MarkRead flips one cached item to read. It is idempotent: an unknown ID or
// an already-read item changes nothing.
func (c *Cache) MarkRead(id string) bool {
	c.mu.Lock()
	changed := false
	for i := range c.items {
		if c.items[i].ID == id && !c.items[i].IsRead {
			c.items[i].IsRead = true
			if c.unread > 0 {
				c.unread--
			}
			changed = true
			break
		}
	}
	c.mu.Unlock()

	if changed {
		c.notify()
	}
	return changed
}

// Items returns a copy of the mirror, newest first.
func (c *Cache) Items() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Notification(nil), c.items...)
}

// Unread returns the derived unread count.
func (c *Cache) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// UnreadIDs returns the IDs of cached items still unread, newest first.
func (c *Cache) UnreadIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ids []string
	for _, n := range c.items {
		if !n.IsRead {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Since returns the lower bound for the next incremental poll, or false when
// no poll has completed yet.
func (c *Cache) Since() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPoll, !c.lastPoll.IsZero()
}

// Advance moves the poll watermark forward. Called only after a successful
// fetch so a failed poll retries the same window.
func (c *Cache) Advance(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.lastPoll) {
		c.lastPoll = t
	}
}

// Subscribe registers fn to run after every mutation of the mirror. The
// returned func cancels the subscription. fn must not call back into the
// cache's mutating methods.
func (c *Cache) Subscribe(fn func()) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Cache) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
