package transport

import (
	"bufio"
	"context"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/arbiter-client/pkg/protocol"
)

var ErrNotConnected = errors.New("not connected")

// Client is a Service over a single TCP stream.
type Client struct {
	address     string
	dialTimeout time.Duration
	logger      *zap.Logger

	mutex  sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

var _ Service = (*Client)(nil)

func NewClient(address string, dialTimeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		address:     address,
		dialTimeout: dialTimeout,
		logger:      logger.Named("transport"),
	}
}

func (c *Client) Connect(ctx context.Context) error {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", c.address)
	}

	c.mutex.Lock()
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	c.mutex.Unlock()

	c.logger.Info("connected",
		zap.String("address", c.address),
		zap.String("local", conn.LocalAddr().String()))

	return nil
}

func (c *Client) connection() (net.Conn, *bufio.Reader) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.conn, c.reader
}

func (c *Client) Receive() ([]byte, error) {
	conn, reader := c.connection()
	if conn == nil {
		return nil, ErrNotConnected
	}

	payload, err := protocol.ReadFrame(reader)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("frame received", zap.Int("size", len(payload)))
	return payload, nil
}

func (c *Client) Send(payload []byte) error {
	conn, _ := c.connection()
	if conn == nil {
		return ErrNotConnected
	}

	err := protocol.WriteFrame(conn, payload)
	if err != nil {
		return err
	}

	c.logger.Debug("frame sent", zap.Int("size", len(payload)))
	return nil
}

// Close is safe to call while Receive is blocked; the pending read fails.
func (c *Client) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return errors.Wrap(err, "failed to close connection")
}
