package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	FrameHeaderSize = 4

	// MaxFrameSize bounds the allocation made for a single length prefix.
	MaxFrameSize = 16 << 20
)

// ReadFrame reads one length-prefixed frame and returns its payload.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [FrameHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, &TransportError{Op: "read frame header", Err: err}
	}

	size := binary.BigEndian.Uint32(header[:])
	if size > MaxFrameSize {
		return nil, &TransportError{
			Op:  "read frame header",
			Err: errors.Errorf("frame of %d bytes exceeds limit of %d", size, MaxFrameSize),
		}
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, &TransportError{Op: "read frame payload", Err: err}
	}

	return payload, nil
}

// WriteFrame writes payload behind its big-endian length prefix.
func WriteFrame(w io.Writer, payload []byte) error {
	if _, err := w.Write(EncodeFrame(payload)); err != nil {
		return &TransportError{Op: "write frame", Err: err}
	}
	return nil
}

func EncodeFrame(payload []byte) []byte {
	frame := make([]byte, FrameHeaderSize+len(payload))
	binary.BigEndian.PutUint32(frame, uint32(len(payload)))
	copy(frame[FrameHeaderSize:], payload)
	return frame
}

// Encode serializes message and frames it. Outbound text is sent as-is.
// A connection produces the same bytes in two steps: MarshalMessage on the
// sending side, then WriteFrame in the transport.
func Encode(message Message) ([]byte, error) {
	payload, err := MarshalMessage(message)
	if err != nil {
		return nil, err
	}
	return EncodeFrame(payload), nil
}

// Decode parses a frame payload into a Message.
// Inbound payloads may arrive quoted a second time ("{\"Welcome\":...}"),
// the outer layer is removed before parsing.
func Decode(payload []byte) (Message, error) {
	if !utf8.Valid(payload) {
		return nil, &ProtocolError{
			Payload: truncate(payload, 64),
			Err:     errors.New("payload is not valid UTF-8"),
		}
	}

	message, err := UnmarshalMessage(unwrapQuoted(payload))
	if err != nil {
		return nil, &ProtocolError{Payload: truncate(payload, 64), Err: err}
	}
	return message, nil
}

func unwrapQuoted(payload []byte) []byte {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) < 2 || trimmed[0] != '"' || trimmed[len(trimmed)-1] != '"' {
		return payload
	}

	// A bare tag such as "Hello" is already valid JSON.
	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		inner := bytes.TrimSpace([]byte(text))
		if len(inner) > 0 && (inner[0] == '{' || inner[0] == '"') {
			return inner
		}
		return trimmed
	}

	inner := trimmed[1 : len(trimmed)-1]
	return bytes.ReplaceAll(inner, []byte(`\"`), []byte(`"`))
}
