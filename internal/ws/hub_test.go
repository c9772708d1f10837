package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"briks_webapp/internal/service"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		go Serve(hub, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	hub.PublishMarketEvent(service.MarketEvent{
		Kind:       service.EventPropertyPurchased,
		PropertyID: "prop-1",
		UserID:     "user-1",
		Amount:     decimal.RequireFromString("32300"),
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt service.MarketEvent
	require.NoError(t, json.Unmarshal(payload, &evt))
	require.Equal(t, service.EventPropertyPurchased, evt.Kind)
	require.Equal(t, "prop-1", evt.PropertyID)
	require.Equal(t, "user-1", evt.UserID)
	require.Equal(t, "32300", evt.Amount.String())
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	first := dialTestHub(t, hub)
	second := dialTestHub(t, hub)
	waitForClients(t, hub, 2)

	hub.PublishMarketEvent(service.MarketEvent{
		Kind:       service.EventPropertyListed,
		PropertyID: "prop-2",
		Amount:     decimal.RequireFromString("6000"),
	})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		var evt service.MarketEvent
		require.NoError(t, json.Unmarshal(payload, &evt))
		require.Equal(t, "prop-2", evt.PropertyID)
	}
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// publishing to an empty hub is a no-op
	hub.PublishMarketEvent(service.MarketEvent{Kind: service.EventPropertySold})
}
