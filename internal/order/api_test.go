package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petparadise/storefront/internal/backend"
)

func TestHTTPAPI_QueryParameters(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, 0)
	ctx := context.Background()

	_, err := NewAPI(client).ByCustomer(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "/orders/by-customer", gotPath)
	assert.Equal(t, map[string]string{"customerId": "42"}, gotQuery)

	_, err = NewItemsAPI(client).ByOrder(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "/order-items/by-order", gotPath)
	assert.Equal(t, map[string]string{"orderId": "7"}, gotQuery)

	_, err = NewLogsAPI(client).ByOrder(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "/order-status-logs/by-order", gotPath)
	assert.Equal(t, map[string]string{"orderId": "7"}, gotQuery)
}
