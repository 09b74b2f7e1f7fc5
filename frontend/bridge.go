// Package frontend exposes the batch to a local control page over
// WebSocket. The page is the operator's window into the run: it shows
// progress, relays the captcha notice and carries the start and stop
// commands back.
package frontend

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cfe-fetch/batch"
	"github.com/cfe-fetch/logs"
)

// Message types on the wire, both directions.
const (
	MsgTypeStart    = "start"
	MsgTypeStop     = "stop"
	MsgTypeState    = "state"
	MsgTypeProgress = "progress"
	MsgTypeCaptcha  = "captcha"
)

// WSMessage is the envelope for every frame.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// StatePayload carries the batch state label.
type StatePayload struct {
	Label string `json:"label"`
}

// CaptchaPayload carries the operator notice.
type CaptchaPayload struct {
	Message string `json:"message"`
}

// Bridge is a WebSocket server for the local control page. It implements
// the batch front-end contract and the captcha prompter. A single page
// connection is served at a time; a reconnecting page receives the current
// state and progress so it can redraw.
type Bridge struct {
	addr string
	logs *logs.Pair

	upgrader websocket.Upgrader
	server   *http.Server

	mu           sync.Mutex
	conn         *websocket.Conn
	stopped      bool
	lastState    string
	lastSnapshot *batch.Snapshot

	startOnce sync.Once
	startCh   chan struct{}
}

// NewBridge creates an unstarted bridge listening on addr.
func NewBridge(addr string, lg *logs.Pair) *Bridge {
	if lg == nil {
		lg = logs.ConsolePair()
	}
	return &Bridge{
		addr: addr,
		logs: lg,
		upgrader: websocket.Upgrader{
			// The page is served by this same process.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		startCh: make(chan struct{}),
	}
}

// Start serves the control page and its WebSocket endpoint.
func (b *Bridge) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", b.handleIndex)
	mux.HandleFunc("/ws", b.handleWS)

	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return fmt.Errorf("frontend listen failed: %w", err)
	}

	b.server = &http.Server{Handler: mux}
	go func() {
		if err := b.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			b.logs.Error.Printf("Frontend server: %v", err)
		}
	}()

	b.logs.Info.Printf("Control page on http://%s/", ln.Addr())
	return nil
}

// Close shuts the server down and drops the page connection.
func (b *Bridge) Close() error {
	b.mu.Lock()
	if b.conn != nil {
		b.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		b.conn.Close()
		b.conn = nil
	}
	b.mu.Unlock()

	if b.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return b.server.Shutdown(ctx)
}

// WaitStart blocks until the page sends the start command.
func (b *Bridge) WaitStart(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.startCh:
		return nil
	}
}

// Stopped reports whether the page requested a stop.
func (b *Bridge) Stopped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stopped
}

// SetState pushes a batch state label to the page.
func (b *Bridge) SetState(label string) {
	b.mu.Lock()
	b.lastState = label
	b.mu.Unlock()
	b.send(MsgTypeState, StatePayload{Label: label})
}

// Render pushes a progress snapshot to the page.
func (b *Bridge) Render(snap batch.Snapshot) {
	b.mu.Lock()
	b.lastSnapshot = &snap
	b.mu.Unlock()
	b.send(MsgTypeProgress, snap)
}

// NotifyCaptcha relays the captcha notice to the operator.
func (b *Bridge) NotifyCaptcha(message string) {
	b.send(MsgTypeCaptcha, CaptchaPayload{Message: message})
}

func (b *Bridge) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logs.Error.Printf("Frontend upgrade failed: %v", err)
		return
	}

	b.mu.Lock()
	if b.conn != nil {
		b.conn.Close()
	}
	b.conn = conn
	state := b.lastState
	snap := b.lastSnapshot
	b.mu.Unlock()

	b.logs.Info.Printf("Control page connected from %s", r.RemoteAddr)

	// Replay so a reconnecting page redraws immediately.
	if state != "" {
		b.send(MsgTypeState, StatePayload{Label: state})
	}
	if snap != nil {
		b.send(MsgTypeProgress, *snap)
	}

	go b.readPump(conn)
}

func (b *Bridge) readPump(conn *websocket.Conn) {
	defer func() {
		b.mu.Lock()
		if b.conn == conn {
			b.conn = nil
		}
		b.mu.Unlock()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				b.logs.Error.Printf("Control page read: %v", err)
			}
			return
		}
		b.handleMessage(data)
	}
}

func (b *Bridge) handleMessage(data []byte) {
	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		b.logs.Error.Printf("Control page sent invalid frame: %v", err)
		return
	}

	switch msg.Type {
	case MsgTypeStart:
		b.logs.Info.Println("Start requested from control page")
		b.startOnce.Do(func() { close(b.startCh) })
	case MsgTypeStop:
		b.logs.Info.Println("Stop requested from control page")
		b.mu.Lock()
		b.stopped = true
		b.mu.Unlock()
	}
}

func (b *Bridge) send(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logs.Error.Printf("Frontend marshal failed: %v", err)
		return
	}
	frame, err := json.Marshal(WSMessage{Type: msgType, Payload: data})
	if err != nil {
		b.logs.Error.Printf("Frontend marshal failed: %v", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		// No page connected. Progress frames are advisory.
		return
	}
	if err := b.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		b.logs.Error.Printf("Frontend write failed: %v", err)
		b.conn.Close()
		b.conn = nil
	}
}
