// Package network implements the event ingress client: a TCP
// connection carrying framed JSON messages from the observed
// application. The engine never blocks on it; decoded events are
// pushed into the world's queue and applied on the tick goroutine.
package network

import (
	"encoding/binary"
	"errors"
	"io"
)

// MessageType identifies the semantic meaning of a message
type MessageType uint8

const (
	// Session control
	MsgHello     MessageType = 0x01 // Client announces session id
	MsgHeartbeat MessageType = 0x02

	// Activity feed
	MsgActivity MessageType = 0x10 // One component did work
	MsgHealth   MessageType = 0x11 // Partial health metrics
	MsgBulk     MessageType = 0x12 // Batch of component activities
)

// HeaderSize precedes every message on the wire
// Fixed 4 bytes: [Type:1][Flags:1][Len:2]
const HeaderSize = 4

// MaxPayloadSize bounds a single JSON payload. Kept under the uint16
// length field's range.
const MaxPayloadSize = 32 * 1024

// Message is a framed wire message
type Message struct {
	Type    MessageType
	Flags   uint8
	Payload []byte
}

// ErrPayloadTooLarge is returned for frames exceeding MaxPayloadSize
var ErrPayloadTooLarge = errors.New("payload exceeds maximum size")

// Encode writes the framed message to w
func (m *Message) Encode(w io.Writer) error {
	if len(m.Payload) > MaxPayloadSize {
		return ErrPayloadTooLarge
	}

	header := make([]byte, HeaderSize)
	header[0] = byte(m.Type)
	header[1] = m.Flags
	binary.BigEndian.PutUint16(header[2:4], uint16(len(m.Payload)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if len(m.Payload) > 0 {
		if _, err := w.Write(m.Payload); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one framed message from r
func Decode(r io.Reader) (*Message, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint16(header[2:4])
	if int(length) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	m := &Message{
		Type:  MessageType(header[0]),
		Flags: header[1],
	}
	if length > 0 {
		m.Payload = make([]byte, length)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Wire payload shapes. Field names match the observed application's
// event schema.

// ActivityPayload is the body of MsgActivity
type ActivityPayload struct {
	Component string  `json:"component"`
	Intensity float64 `json:"intensity"`
}

// HealthPayload is the body of MsgHealth; absent fields stay nil
type HealthPayload struct {
	Metrics struct {
		Overall     *float64 `json:"overall"`
		Memory      *float64 `json:"memory"`
		Training    *float64 `json:"training"`
		Connections *float64 `json:"apiConnections"`
	} `json:"metrics"`
}

// BulkPayload is the body of MsgBulk
type BulkPayload struct {
	Components []ActivityPayload `json:"components"`
}

// HelloPayload is the body of MsgHello
type HelloPayload struct {
	SessionID string `json:"session_id"`
	Client    string `json:"client"`
}
