package server

import "encoding/json"

// MessageType names the kind of a websocket message.
type MessageType string

const (
	MessageTypeMove    MessageType = "move"
	MessageTypeReset   MessageType = "reset"
	MessageTypeBoard   MessageType = "board"
	MessageTypeVerdict MessageType = "verdict"
	MessageTypeError   MessageType = "error"
)

// Message is the envelope of every websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type errorPayload struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newMessage(t MessageType, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: data}, nil
}

func errorMessage(err error) Message {
	msg, _ := newMessage(MessageTypeError, errorPayload{Error: err.Error(), Code: statusFor(err)})
	return msg
}
