// Package secret implements the RecoverSecret challenge contract.
// Solving is not implemented: Solve always answers with an empty sentence.
package secret

import (
	"strings"

	"github.com/six78/arbiter-client/pkg/challenge"
	"github.com/six78/arbiter-client/pkg/protocol"
)

const Name = "recoverSecret"

type RecoverSecret struct {
	input  protocol.RecoverSecretInput
	tuples [][]rune
}

var _ challenge.Challenge[protocol.RecoverSecretOutput] = (*RecoverSecret)(nil)

func New(input protocol.RecoverSecretInput) *RecoverSecret {
	return &RecoverSecret{
		input:  input,
		tuples: splitTuples([]rune(input.Letters), input.TupleSizes),
	}
}

func (s *RecoverSecret) Name() string {
	return Name
}

func (s *RecoverSecret) Solve() protocol.RecoverSecretOutput {
	return protocol.RecoverSecretOutput{SecretSentence: ""}
}

// Verify checks the sentence has the expected word count and contains every
// letter tuple as an ordered subsequence. Spaces are letters like any other.
func (s *RecoverSecret) Verify(answer protocol.RecoverSecretOutput) bool {
	if s.tuples == nil {
		return false
	}
	if uint(len(strings.Fields(answer.SecretSentence))) != s.input.WordCount {
		return false
	}

	sentence := []rune(answer.SecretSentence)
	for _, tuple := range s.tuples {
		if !isSubsequence(tuple, sentence) {
			return false
		}
	}
	return true
}

// splitTuples returns nil when sizes don't add up to the letters.
func splitTuples(letters []rune, sizes []uint) [][]rune {
	tuples := make([][]rune, 0, len(sizes))
	offset := uint(0)
	for _, size := range sizes {
		if offset+size > uint(len(letters)) {
			return nil
		}
		tuples = append(tuples, letters[offset:offset+size])
		offset += size
	}
	if offset != uint(len(letters)) {
		return nil
	}
	return tuples
}

func isSubsequence(needle, haystack []rune) bool {
	i := 0
	for _, r := range haystack {
		if i == len(needle) {
			break
		}
		if r == needle[i] {
			i++
		}
	}
	return i == len(needle)
}
