package protocol

type MessageType string

const (
	MessageTypeHello             MessageType = "Hello"
	MessageTypeWelcome           MessageType = "Welcome"
	MessageTypeSubscribe         MessageType = "Subscribe"
	MessageTypeSubscribeResult   MessageType = "SubscribeResult"
	MessageTypePublicLeaderBoard MessageType = "PublicLeaderBoard"
	MessageTypeChallenge         MessageType = "Challenge"
	MessageTypeChallengeResult   MessageType = "ChallengeResult"
	MessageTypeRoundSummary      MessageType = "RoundSummary"
	MessageTypeEndOfGame         MessageType = "EndOfGame"
)

// Message is one protocol event. Exactly one concrete type per frame.
type Message interface {
	Type() MessageType
}

type Hello struct{}

type Welcome struct {
	Version int `json:"version"`
}

type Subscribe struct {
	Name string `json:"name"`
}

type SubscribeError string

const (
	SubscribeErrorAlreadyRegistered SubscribeError = "AlreadyRegistered"
	SubscribeErrorInvalidName       SubscribeError = "InvalidName"
)

// SubscribeResult is "Ok" when Err is empty.
type SubscribeResult struct {
	Err SubscribeError
}

func (r SubscribeResult) OK() bool {
	return r.Err == ""
}

type PublicPlayer struct {
	Name          string  `json:"name"`
	StreamID      string  `json:"stream_id"`
	Score         int32   `json:"score"`
	Steps         uint32  `json:"steps"`
	IsActive      bool    `json:"is_active"`
	TotalUsedTime float64 `json:"total_used_time"`
}

type PublicLeaderBoard []PublicPlayer

// Last returns the last player of the board, the one this client pursues.
func (b PublicLeaderBoard) Last() (PublicPlayer, bool) {
	if len(b) == 0 {
		return PublicPlayer{}, false
	}
	return b[len(b)-1], true
}

type Challenge struct {
	Input ChallengeInput
}

type ChallengeResult struct {
	Answer     ChallengeAnswer `json:"answer"`
	NextTarget string          `json:"next_target"`
}

type ChallengeValueKind string

const (
	ChallengeValueUnreachable ChallengeValueKind = "Unreachable"
	ChallengeValueTimeout     ChallengeValueKind = "Timeout"
	ChallengeValueBadResult   ChallengeValueKind = "BadResult"
	ChallengeValueOk          ChallengeValueKind = "Ok"
)

// ChallengeValue is one player's outcome in a round. UsedTime and NextTarget
// are only set for BadResult and Ok.
type ChallengeValue struct {
	Kind       ChallengeValueKind
	UsedTime   float64
	NextTarget string
}

type ReportedChallengeResult struct {
	Name  string         `json:"name"`
	Value ChallengeValue `json:"value"`
}

type RoundSummary struct {
	Challenge string                    `json:"challenge"`
	Chain     []ReportedChallengeResult `json:"chain"`
}

type EndOfGame struct {
	LeaderBoard PublicLeaderBoard `json:"leader_board"`
}

func (Hello) Type() MessageType             { return MessageTypeHello }
func (Welcome) Type() MessageType           { return MessageTypeWelcome }
func (Subscribe) Type() MessageType         { return MessageTypeSubscribe }
func (SubscribeResult) Type() MessageType   { return MessageTypeSubscribeResult }
func (PublicLeaderBoard) Type() MessageType { return MessageTypePublicLeaderBoard }
func (Challenge) Type() MessageType         { return MessageTypeChallenge }
func (ChallengeResult) Type() MessageType   { return MessageTypeChallengeResult }
func (RoundSummary) Type() MessageType      { return MessageTypeRoundSummary }
func (EndOfGame) Type() MessageType         { return MessageTypeEndOfGame }
