// Package codec provides JSON encoding helpers for protocol messages.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/ZydFirst/doudizhu/internal/protocol"
)

// NewMessage creates a Message with a JSON-encoded payload.
func NewMessage(msgType protocol.MessageType, payload any) (*protocol.Message, error) {
	msg := &protocol.Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("编码 %s 消息失败: %w", msgType, err)
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage is like NewMessage but panics on marshal failure.
// Payload types are plain structs, so a failure is a programming error.
func MustNewMessage(msgType protocol.MessageType, payload any) *protocol.Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode serializes a message for the wire.
func Encode(msg *protocol.Message) ([]byte, error) {
	return json.Marshal(msg)
}

// Decode parses a wire message.
func Decode(data []byte) (*protocol.Message, error) {
	var msg protocol.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("解析消息失败: %w", err)
	}
	return &msg, nil
}

// DecodePayload parses a message payload into the given struct.
func DecodePayload(msg *protocol.Message, v any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%s 消息缺少 payload", msg.Type)
	}
	return json.Unmarshal(msg.Payload, v)
}
