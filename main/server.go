package main

import (
	"encoding/binary"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"fluidsim/pkg/fluid"
)

// streamServer pushes density snapshots to websocket clients so the field can
// be consumed outside the window, e.g. by a browser visualizer.
type streamServer struct {
	upgrader     websocket.Upgrader
	size         int
	writeTimeout time.Duration

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
}

func newStreamServer(size int) *streamServer {
	return &streamServer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		size:         size,
		writeTimeout: streamWriteTimeout,
		clients:      make(map[*websocket.Conn]*sync.Mutex),
	}
}

// listen starts serving on addr and returns immediately; frames are pushed
// from Broadcast on the game tick.
func (s *streamServer) listen(addr string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	go func() {
		log.Printf("Density stream listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("Density stream stopped: %v", err)
		}
	}()
}

func (s *streamServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = &sync.Mutex{}
	s.mu.Unlock()
	log.Printf("Stream client connected: %s", conn.RemoteAddr())

	// Drain incoming messages until the client goes away; the stream is
	// one-directional.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

func (s *streamServer) drop(conn *websocket.Conn) {
	s.mu.Lock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		conn.Close()
		log.Printf("Stream client disconnected: %s", conn.RemoteAddr())
	}
	s.mu.Unlock()
}

// Broadcast encodes the snapshot as one binary frame, a little-endian uint32
// grid size followed by float32 cells in row-major order, and sends it to
// every client. Each write carries a deadline so a client that stops reading
// errors out instead of wedging the tick; failed clients are dropped.
func (s *streamServer) Broadcast(d fluid.ScalarField) {
	s.mu.RLock()
	if len(s.clients) == 0 {
		s.mu.RUnlock()
		return
	}
	conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
	for conn, mu := range s.clients {
		conns[conn] = mu
	}
	s.mu.RUnlock()

	values := d.Values()
	frame := make([]byte, 4+4*len(values))
	binary.LittleEndian.PutUint32(frame, uint32(s.size))
	for i, v := range values {
		binary.LittleEndian.PutUint32(frame[4+i*4:], math.Float32bits(float32(v)))
	}

	for conn, mu := range conns {
		mu.Lock()
		conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
		err := conn.WriteMessage(websocket.BinaryMessage, frame)
		mu.Unlock()
		if err != nil {
			s.drop(conn)
		}
	}
}
