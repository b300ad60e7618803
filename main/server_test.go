package main

import (
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"fluidsim/pkg/fluid"
)

func dialStream(t *testing.T, s *streamServer) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(s.handleWebSocket))
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	waitForClients(t, s, 1)
	return conn
}

func waitForClients(t *testing.T, s *streamServer, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.RLock()
		n := len(s.clients)
		s.mu.RUnlock()
		if n == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d", want)
}

func TestBroadcastDeliversFrame(t *testing.T) {
	const size = 16
	s := newStreamServer(size)
	conn := dialStream(t, s)

	sim, err := fluid.New(size, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sim.AddDensity(size/2, size/2, 100)
	s.Broadcast(sim.Density())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("got message type %d, want binary", kind)
	}
	if want := 4 + 4*size*size; len(frame) != want {
		t.Fatalf("frame length = %d, want %d", len(frame), want)
	}
	if got := binary.LittleEndian.Uint32(frame); got != size {
		t.Fatalf("frame header size = %d, want %d", got, size)
	}
}

// A client that connects and then never reads must not block the tick: the
// write deadline turns the stalled write into an error and the client is
// dropped.
func TestBroadcastDropsStalledClient(t *testing.T) {
	s := newStreamServer(defaultGridSize)
	s.writeTimeout = 100 * time.Millisecond
	dialStream(t, s)

	sim, err := fluid.New(defaultGridSize, defaultDiffusion, defaultViscosity)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < 100; i++ {
		s.Broadcast(sim.Density())
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("broadcast loop took %v with a stalled client", elapsed)
	}
	waitForClients(t, s, 0)
}
