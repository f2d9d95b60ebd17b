package matchers

import (
	"fmt"
	"testing"

	"github.com/six78/arbiter-client/pkg/protocol"
)

type ChallengeResultMatcher struct {
	MessageMatcher
	kind       protocol.ChallengeKind
	nextTarget string
}

func NewChallengeResultMatcher(t *testing.T, kind protocol.ChallengeKind, nextTarget string) *ChallengeResultMatcher {
	return &ChallengeResultMatcher{
		MessageMatcher: *NewMessageMatcher(t, protocol.MessageTypeChallengeResult),
		kind:           kind,
		nextTarget:     nextTarget,
	}
}

func (m *ChallengeResultMatcher) Matches(x interface{}) bool {
	message, ok := m.match(x)
	if !ok {
		return false
	}

	result := message.(protocol.ChallengeResult)
	if result.NextTarget != m.nextTarget {
		return false
	}
	if result.Answer.Output == nil || result.Answer.Output.Kind() != m.kind {
		return false
	}

	m.record(result)
	return true
}

func (m *ChallengeResultMatcher) String() string {
	return fmt.Sprintf("is %s challenge result for next target %q", m.kind, m.nextTarget)
}

func (m *ChallengeResultMatcher) Result() protocol.ChallengeResult {
	return m.Last().(protocol.ChallengeResult)
}
