package testcommon

import (
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/six78/arbiter-client/internal/config"
	"github.com/six78/arbiter-client/pkg/protocol"
)

type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupConfigLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = config.Logger.Sync()
}

// Payload marshals message the way the arbiter sends it.
func (s *Suite) Payload(message protocol.Message) []byte {
	payload, err := protocol.MarshalMessage(message)
	s.Require().NoError(err)
	return payload
}

// Frame returns message as a complete length-prefixed frame.
func (s *Suite) Frame(message protocol.Message) []byte {
	frame, err := protocol.Encode(message)
	s.Require().NoError(err)
	return frame
}
