package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/i18n"
)

// Level distinguishes the notification styles shown to the user.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one toast raised by a container operation.
type Notification struct {
	ID      string `json:"id"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Center collects notifications for a single session. Every state-changing
// container operation raises exactly one; each auto-dismisses after the TTL.
type Center struct {
	mu      sync.Mutex
	tr      *i18n.Translator
	ttl     time.Duration
	active  []Notification
	dismiss func(id string, after time.Duration) // swapped out in tests
}

func NewCenter(tr *i18n.Translator, ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	c := &Center{tr: tr, ttl: ttl}
	c.dismiss = func(id string, after time.Duration) {
		time.AfterFunc(after, func() { c.Dismiss(id) })
	}
	return c
}

// Success raises a success toast for the translated key.
func (c *Center) Success(key string) { c.push(LevelSuccess, key) }

// Info raises an informational toast for the translated key.
func (c *Center) Info(key string) { c.push(LevelInfo, key) }

// Error raises an error toast for the translated key.
func (c *Center) Error(key string) { c.push(LevelError, key) }

// Failure raises the error toast matching the backend error kind, so each
// sentinel code keeps its own localized message. Validation failures carry
// their own key and are reported by the caller instead.
func (c *Center) Failure(err error, fallbackKey string) {
	switch backend.KindOf(err) {
	case backend.KindNotFound:
		c.Error("common.not_found")
	case backend.KindServerError:
		c.Error("common.server_error")
	default:
		c.Error(fallbackKey)
	}
}

// Active returns a snapshot of the not-yet-dismissed notifications.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

// Dismiss drops one notification early.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

func (c *Center) push(level Level, key string) {
	n := Notification{ID: uuid.NewString(), Level: level, Message: c.tr.T(key)}
	c.mu.Lock()
	c.active = append(c.active, n)
	c.mu.Unlock()
	c.dismiss(n.ID, c.ttl)
}
