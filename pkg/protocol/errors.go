package protocol

import "fmt"

// TransportError is returned when the stream fails underneath a frame:
// closed connection, short read or a length prefix that can't be honoured.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when a frame payload is not a valid protocol message.
type ProtocolError struct {
	Payload string
	Err     error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
