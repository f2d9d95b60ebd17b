package game

import (
	"net"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"

	"github.com/six78/arbiter-client/internal/transport"
	"github.com/six78/arbiter-client/pkg/protocol"
)

// serveArbiter accepts one connection, reads the handshake and then runs
// script against it.
func (s *Suite) serveArbiter(listener net.Listener, script func(conn net.Conn)) <-chan error {
	done := make(chan error, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			done <- err
			return
		}
		defer conn.Close()

		for _, expected := range []protocol.MessageType{protocol.MessageTypeHello, protocol.MessageTypeSubscribe} {
			payload, err := protocol.ReadFrame(conn)
			if err != nil {
				done <- err
				return
			}
			message, err := protocol.Decode(payload)
			if err != nil {
				done <- err
				return
			}
			if message.Type() != expected {
				done <- errors.Errorf("expected %s, got %s", expected, message.Type())
				return
			}
		}

		script(conn)
		done <- nil
	}()
	return done
}

func (s *Suite) networkGame(address string) *Game {
	client := transport.NewClient(address, time.Second, s.Logger)
	s.T().Cleanup(func() { _ = client.Close() })

	g := NewGame([]Option{
		WithContext(s.ctx),
		WithTransport(client),
		WithClock(s.clock),
		WithLogger(s.Logger),
		WithPlayerName(gofakeit.Username()),
	})
	s.Require().NotNil(g)
	return g
}

func (s *Suite) TestNetworkTruncatedFrame() {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer listener.Close()

	done := s.serveArbiter(listener, func(conn net.Conn) {
		_, _ = conn.Write(s.Frame(protocol.Welcome{Version: 1}))

		frame := s.Frame(protocol.PublicLeaderBoard{{Name: gofakeit.Username()}})
		_, _ = conn.Write(frame[:len(frame)/2])
	})

	g := s.networkGame(listener.Addr().String())
	err = g.Run()

	var transportErr *protocol.TransportError
	s.Require().True(errors.As(err, &transportErr))
	s.Require().Equal(StateTerminated, g.State())
	s.Require().NoError(<-done)
}

func (s *Suite) TestNetworkFullGame() {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer listener.Close()

	target := gofakeit.Username()
	board := protocol.PublicLeaderBoard{{Name: target, Score: 1}}
	results := make(chan protocol.Message, 1)

	done := s.serveArbiter(listener, func(conn net.Conn) {
		_, _ = conn.Write(s.Frame(protocol.Welcome{Version: 1}))
		_, _ = conn.Write(s.Frame(protocol.SubscribeResult{}))
		_, _ = conn.Write(s.Frame(board))
		_, _ = conn.Write(s.Frame(protocol.Challenge{Input: protocol.MonstrousMazeInput{Grid: "│Y M X│", Endurance: 2}}))

		payload, err := protocol.ReadFrame(conn)
		if err != nil {
			close(results)
			return
		}
		message, err := protocol.Decode(payload)
		if err != nil {
			close(results)
			return
		}
		results <- message

		_, _ = conn.Write(s.Frame(protocol.EndOfGame{LeaderBoard: board}))
	})

	g := s.networkGame(listener.Addr().String())
	s.Require().NoError(g.Run())
	s.Require().NoError(<-done)

	message, ok := <-results
	s.Require().True(ok)
	s.Require().Equal(protocol.ChallengeResult{
		Answer:     protocol.ChallengeAnswer{Output: protocol.MonstrousMazeOutput{Path: ">>>>"}},
		NextTarget: target,
	}, message)
	s.Require().Equal(board, g.LeaderBoard())
}

func (s *Suite) TestNetworkConnectionRefused() {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	address := listener.Addr().String()
	s.Require().NoError(listener.Close())

	g := s.networkGame(address)
	err = g.Run()
	s.Require().Error(err)
	s.Require().Contains(err.Error(), address)
}
