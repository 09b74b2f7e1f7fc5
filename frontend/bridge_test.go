package frontend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfe-fetch/batch"
)

func dialBridge(t *testing.T, b *Bridge) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(b.handleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) WSMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestBridgeStartCommand(t *testing.T) {
	b := NewBridge("127.0.0.1:0", nil)
	conn := dialBridge(t, b)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: MsgTypeStart}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, b.WaitStart(ctx))
}

func TestBridgeStopCommand(t *testing.T) {
	b := NewBridge("127.0.0.1:0", nil)
	conn := dialBridge(t, b)

	assert.False(t, b.Stopped())

	require.NoError(t, conn.WriteJSON(WSMessage{Type: MsgTypeStop}))

	require.Eventually(t, b.Stopped, 2*time.Second, 10*time.Millisecond)
}

func TestBridgeReplaysStateOnConnect(t *testing.T) {
	b := NewBridge("127.0.0.1:0", nil)

	// Pushed before any page is connected.
	b.SetState("En cours de traitement...")
	b.Render(batch.Snapshot{Total: 5, Processed: 2, Succeeded: 1, Failed: 1, Remaining: 3})

	conn := dialBridge(t, b)

	msg := readFrame(t, conn)
	require.Equal(t, MsgTypeState, msg.Type)
	var state StatePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &state))
	assert.Equal(t, "En cours de traitement...", state.Label)

	msg = readFrame(t, conn)
	require.Equal(t, MsgTypeProgress, msg.Type)
	var snap batch.Snapshot
	require.NoError(t, json.Unmarshal(msg.Payload, &snap))
	assert.Equal(t, 5, snap.Total)
	assert.Equal(t, 2, snap.Processed)
	assert.Equal(t, 3, snap.Remaining)
}

func TestBridgeCaptchaNotice(t *testing.T) {
	b := NewBridge("127.0.0.1:0", nil)
	conn := dialBridge(t, b)

	b.NotifyCaptcha("Saisissez le captcha et cliquez sur le bouton de connexion.")

	msg := readFrame(t, conn)
	require.Equal(t, MsgTypeCaptcha, msg.Type)
	var payload CaptchaPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Contains(t, payload.Message, "captcha")
}

func TestBridgeProgressFrames(t *testing.T) {
	b := NewBridge("127.0.0.1:0", nil)
	conn := dialBridge(t, b)

	for i := 1; i <= 3; i++ {
		b.Render(batch.Snapshot{Total: 3, Processed: i, Succeeded: i, Remaining: 3 - i})
	}

	var last batch.Snapshot
	for i := 0; i < 3; i++ {
		msg := readFrame(t, conn)
		require.Equal(t, MsgTypeProgress, msg.Type)
		require.NoError(t, json.Unmarshal(msg.Payload, &last))
	}
	assert.Equal(t, batch.Snapshot{Total: 3, Processed: 3, Succeeded: 3, Remaining: 0}, last)
}

func TestBridgeIgnoresUnknownFrames(t *testing.T) {
	b := NewBridge("127.0.0.1:0", nil)
	conn := dialBridge(t, b)

	require.NoError(t, conn.WriteJSON(WSMessage{Type: "ping"}))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	assert.False(t, b.Stopped())

	// The connection survives malformed input.
	require.NoError(t, conn.WriteJSON(WSMessage{Type: MsgTypeStop}))
	require.Eventually(t, b.Stopped, 2*time.Second, 10*time.Millisecond)
}
