package transport

import "context"

//go:generate mockgen -source=service.go -destination=mock/service.go

// Service carries protocol frame payloads to and from the arbiter.
type Service interface {
	Connect(ctx context.Context) error
	Receive() ([]byte, error)
	Send(payload []byte) error
	Close() error
}
