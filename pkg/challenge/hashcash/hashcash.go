package hashcash

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math/bits"
	"math/rand/v2"
	"strings"

	"github.com/six78/arbiter-client/pkg/challenge"
	"github.com/six78/arbiter-client/pkg/protocol"
)

const Name = "hashCash"

// Source provides candidate seeds.
type Source interface {
	Uint64() uint64
}

type globalSource struct{}

func (globalSource) Uint64() uint64 {
	return rand.Uint64()
}

type HashCash struct {
	input  protocol.MD5HashCashInput
	source Source
}

var _ challenge.Challenge[protocol.MD5HashCashOutput] = (*HashCash)(nil)

// New returns a solver for input. A nil source draws from math/rand/v2.
func New(input protocol.MD5HashCashInput, source Source) *HashCash {
	if source == nil {
		source = globalSource{}
	}
	return &HashCash{
		input:  input,
		source: source,
	}
}

func (h *HashCash) Name() string {
	return Name
}

func (h *HashCash) Input() protocol.MD5HashCashInput {
	return h.input
}

// Solve samples seeds until one meets the complexity. There is no bound on
// the number of attempts.
func (h *HashCash) Solve() protocol.MD5HashCashOutput {
	for {
		seed := h.source.Uint64()
		digest := Digest(seed, h.input.Message)
		if LeadingZeros(digest[:]) >= h.input.Complexity {
			return protocol.MD5HashCashOutput{
				Seed:     seed,
				Hashcode: FormatDigest(digest),
			}
		}
	}
}

func (h *HashCash) Verify(answer protocol.MD5HashCashOutput) bool {
	digest := Digest(answer.Seed, h.input.Message)
	return LeadingZeros(digest[:]) >= h.input.Complexity &&
		answer.Hashcode == FormatDigest(digest)
}

// Digest hashes the 16 uppercase hex digits of seed followed by message.
func Digest(seed uint64, message string) [md5.Size]byte {
	return md5.Sum([]byte(fmt.Sprintf("%016X", seed) + message))
}

func FormatDigest(digest [md5.Size]byte) string {
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}

// LeadingZeros counts the leading zero bits of data read as a big-endian number.
func LeadingZeros(data []byte) uint32 {
	var zeros uint32
	for _, b := range data {
		n := uint32(bits.LeadingZeros8(b))
		zeros += n
		if n < 8 {
			break
		}
	}
	return zeros
}
