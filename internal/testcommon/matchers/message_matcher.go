package matchers

import (
	"fmt"
	"testing"

	"github.com/six78/arbiter-client/pkg/protocol"
)

// MessageMatcher matches a sent payload carrying a message of the given type.
type MessageMatcher struct {
	Matcher
	messageType protocol.MessageType
}

func NewMessageMatcher(t *testing.T, messageType protocol.MessageType) *MessageMatcher {
	return &MessageMatcher{
		Matcher:     *NewMatcher(t),
		messageType: messageType,
	}
}

func (m *MessageMatcher) match(x interface{}) (protocol.Message, bool) {
	payload, ok := x.([]byte)
	if !ok || payload == nil {
		return nil, false
	}

	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		return nil, false
	}

	return message, message.Type() == m.messageType
}

func (m *MessageMatcher) Matches(x interface{}) bool {
	message, ok := m.match(x)
	if ok {
		m.record(message)
	}
	return ok
}

func (m *MessageMatcher) String() string {
	return fmt.Sprintf("is %s protocol message", m.messageType)
}

func (m *MessageMatcher) Message() protocol.Message {
	return m.Last().(protocol.Message)
}
