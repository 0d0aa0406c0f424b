package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// connWriter serializes writes from the read loop and the update forwarder.
type connWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *connWriter) send(msg Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(msg)
}

// handleConnection streams a board to one client. The client first
// receives the current snapshot, then every snapshot that follows an
// accepted move from any client, and a verdict for each of its own moves.
func (s *Server) handleConnection(c *websocket.Conn) {
	id := c.Params("id")
	w := &connWriter{conn: c}

	snap, err := s.manager.Get(id)
	if err != nil {
		w.send(errorMessage(err))
		c.Close()
		return
	}
	updates, cancel, err := s.manager.Subscribe(id)
	if err != nil {
		w.send(errorMessage(err))
		c.Close()
		return
	}

	// The connection is released once the handler returns, so the
	// forwarder must have stopped writing by then.
	done := make(chan struct{})
	defer func() {
		cancel()
		<-done
	}()

	go func() {
		defer close(done)
		for snap := range updates {
			msg, err := newMessage(MessageTypeBoard, snap)
			if err != nil {
				continue
			}
			if err := w.send(msg); err != nil {
				return
			}
		}
	}()

	if msg, err := newMessage(MessageTypeBoard, snap); err == nil {
		if err := w.send(msg); err != nil {
			return
		}
	}

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			if s.cfg.Verbosity > 1 {
				s.logger.Printf("board %s: read: %v", id, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			w.send(errorMessage(badRequest(err)))
			continue
		}

		reply, err := s.handleMessage(id, msg)
		if err != nil {
			reply = errorMessage(err)
		}
		if err := w.send(reply); err != nil {
			return
		}
	}
}

// handleMessage answers one inbound message for board id.
func (s *Server) handleMessage(id string, msg Message) (Message, error) {
	switch msg.Type {
	case MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return Message{}, badRequest(err)
		}
		p, err := req.proposal()
		if err != nil {
			return Message{}, err
		}
		verdict, err := s.manager.Propose(id, p)
		if err != nil {
			return Message{}, err
		}
		return newMessage(MessageTypeVerdict, verdict)

	case MessageTypeReset:
		var req createRequest
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				return Message{}, badRequest(err)
			}
		}
		snap, err := s.manager.Reset(id, req.FEN)
		if err != nil {
			return Message{}, err
		}
		return newMessage(MessageTypeBoard, snap)

	default:
		return Message{}, badRequest(fmt.Errorf("unknown message type: %s", msg.Type))
	}
}
