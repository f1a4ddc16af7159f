package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/i18n"
)

// silent returns a center whose auto-dismiss never fires, so tests control
// the active list deterministically.
func silent(lang string) *Center {
	c := NewCenter(i18n.New(lang), time.Hour)
	c.dismiss = func(string, time.Duration) {}
	return c
}

func TestSuccessIsTranslated(t *testing.T) {
	c := silent(i18n.LangVI)
	c.Success("order.placed")

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, LevelSuccess, active[0].Level)
	assert.Equal(t, "Đặt hàng thành công", active[0].Message)
}

func TestFailureMapsErrorKinds(t *testing.T) {
	c := silent(i18n.LangEN)

	c.Failure(backend.NotFound("orders.updateStatus"), "common.failed")
	c.Failure(backend.ServerError("orders.updateStatus"), "common.failed")
	c.Failure(backend.Unknownf("orders.updateStatus", "boom"), "order.place_failed")

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "The requested record no longer exists", active[0].Message)
	assert.Equal(t, "The server ran into a problem, try again later", active[1].Message)
	assert.Equal(t, "Could not place the order", active[2].Message)
	for _, n := range active {
		assert.Equal(t, LevelError, n.Level)
	}
}

func TestDismiss(t *testing.T) {
	c := silent(i18n.LangEN)
	c.Info("cart.added")
	c.Success("cart.updated")

	id := c.Active()[0].ID
	c.Dismiss(id)

	active := c.Active()
	require.Len(t, active, 1)
	assert.NotEqual(t, id, active[0].ID)
}

func TestAutoDismissFires(t *testing.T) {
	c := NewCenter(i18n.New(i18n.LangEN), 10*time.Millisecond)
	c.Success("cart.added")

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(c.Active()) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("notification was never auto-dismissed")
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	c := silent(i18n.LangVI)
	c.Info("no.such.key")
	assert.Equal(t, "no.such.key", c.Active()[0].Message)
}
