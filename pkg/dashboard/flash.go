package dashboard

import (
	"sync"
	"time"

	"github.com/mihaimyh/goavail/pkg/availability"
)

const (
	defaultFlashCapacity = 5
	defaultFlashTTL      = 15 * time.Second
)

// Flash is one notification shown on the page.
type Flash struct {
	Message  string                `json:"message"`
	Severity availability.Severity `json:"severity"`
	At       time.Time             `json:"at"`
}

// FlashNotifier implements availability.Notifier by keeping the most recent
// notifications for display until they are ttl old.
type FlashNotifier struct {
	mu       sync.Mutex
	items    []Flash
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewFlashNotifier keeps up to capacity notifications (default 5) for ttl
// each (default 15s). Non-positive values select the defaults.
func NewFlashNotifier(capacity int, ttl time.Duration) *FlashNotifier {
	if capacity <= 0 {
		capacity = defaultFlashCapacity
	}
	if ttl <= 0 {
		ttl = defaultFlashTTL
	}
	return &FlashNotifier{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Notify implements availability.Notifier.
func (f *FlashNotifier) Notify(message string, severity availability.Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Flash{Message: message, Severity: severity, At: f.now().UTC()})
	if over := len(f.items) - f.capacity; over > 0 {
		f.items = append([]Flash(nil), f.items[over:]...)
	}
}

// Recent returns the unexpired notifications, newest first.
func (f *FlashNotifier) Recent() []Flash {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expire(f.now().UTC())
	out := make([]Flash, len(f.items))
	for i, item := range f.items {
		out[len(f.items)-1-i] = item
	}
	return out
}

// expire drops items older than ttl. Items are in arrival order.
func (f *FlashNotifier) expire(now time.Time) {
	cutoff := now.Add(-f.ttl)
	i := 0
	for i < len(f.items) && !f.items[i].At.After(cutoff) {
		i++
	}
	if i > 0 {
		f.items = append([]Flash(nil), f.items[i:]...)
	}
}
