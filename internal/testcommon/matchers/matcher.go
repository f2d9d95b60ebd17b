package matchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Matcher struct {
	t       *testing.T
	matched []interface{}
}

func NewMatcher(t *testing.T) *Matcher {
	return &Matcher{
		t:       t,
		matched: make([]interface{}, 0, 1),
	}
}

func (m *Matcher) record(value interface{}) {
	m.matched = append(m.matched, value)
}

func (m *Matcher) Count() int {
	return len(m.matched)
}

// Last returns the latest matched value and fails the test if there is none.
func (m *Matcher) Last() interface{} {
	require.NotEmpty(m.t, m.matched, "matcher was never triggered")
	return m.matched[len(m.matched)-1]
}
