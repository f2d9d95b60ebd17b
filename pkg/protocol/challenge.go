package protocol

type ChallengeKind string

const (
	ChallengeKindMD5HashCash   ChallengeKind = "MD5HashCash"
	ChallengeKindMonstrousMaze ChallengeKind = "MonstrousMaze"
	ChallengeKindRecoverSecret ChallengeKind = "RecoverSecret"
)

type ChallengeInput interface {
	Kind() ChallengeKind
}

type ChallengeOutput interface {
	Kind() ChallengeKind
}

type MD5HashCashInput struct {
	Complexity uint32 `json:"complexity"`
	Message    string `json:"message"`
}

type MD5HashCashOutput struct {
	Seed     uint64 `json:"seed"`
	Hashcode string `json:"hashcode"`
}

type MonstrousMazeInput struct {
	Grid      string `json:"grid"`
	Endurance uint8  `json:"endurance"`
}

type MonstrousMazeOutput struct {
	Path string `json:"path"`
}

type RecoverSecretInput struct {
	WordCount  uint   `json:"word_count"`
	Letters    string `json:"letters"`
	TupleSizes []uint `json:"tuple_sizes"`
}

type RecoverSecretOutput struct {
	SecretSentence string `json:"secret_sentence"`
}

// ChallengeAnswer wraps a solver output with its challenge tag.
type ChallengeAnswer struct {
	Output ChallengeOutput
}

func (MD5HashCashInput) Kind() ChallengeKind    { return ChallengeKindMD5HashCash }
func (MD5HashCashOutput) Kind() ChallengeKind   { return ChallengeKindMD5HashCash }
func (MonstrousMazeInput) Kind() ChallengeKind  { return ChallengeKindMonstrousMaze }
func (MonstrousMazeOutput) Kind() ChallengeKind { return ChallengeKindMonstrousMaze }
func (RecoverSecretInput) Kind() ChallengeKind  { return ChallengeKindRecoverSecret }
func (RecoverSecretOutput) Kind() ChallengeKind { return ChallengeKindRecoverSecret }
