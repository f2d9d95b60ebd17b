package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMarshalHello(t *testing.T) {
	payload, err := MarshalMessage(Hello{})
	require.NoError(t, err)
	require.Equal(t, `"Hello"`, string(payload))

	payload, err = MarshalMessage(&Hello{})
	require.NoError(t, err)
	require.Equal(t, `"Hello"`, string(payload))
}

func TestMarshalSubscribe(t *testing.T) {
	name := gofakeit.Username()

	payload, err := MarshalMessage(Subscribe{Name: name})
	require.NoError(t, err)
	require.JSONEq(t, `{"Subscribe":{"name":"`+name+`"}}`, string(payload))
}

func TestMarshalChallengeResult(t *testing.T) {
	result := ChallengeResult{
		Answer: ChallengeAnswer{
			Output: MD5HashCashOutput{Seed: 844, Hashcode: "00441745D9BDF8E5D3C7872AC9DBB2C3"},
		},
		NextTarget: "free_patato",
	}

	payload, err := MarshalMessage(result)
	require.NoError(t, err)
	require.JSONEq(t, `{"ChallengeResult":{
		"answer":{"MD5HashCash":{"seed":844,"hashcode":"00441745D9BDF8E5D3C7872AC9DBB2C3"}},
		"next_target":"free_patato"}}`, string(payload))

	message, err := UnmarshalMessage(payload)
	require.NoError(t, err)
	require.Equal(t, result, message)
}

func TestMarshalChallengeAnswerWithoutOutput(t *testing.T) {
	_, err := MarshalMessage(ChallengeResult{NextTarget: "x"})
	require.Error(t, err)
}

func TestUnmarshalArbiterMessages(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected Message
	}{
		{
			name:     "hello",
			payload:  `"Hello"`,
			expected: Hello{},
		},
		{
			name:     "welcome",
			payload:  `{"Welcome":{"version":1}}`,
			expected: Welcome{Version: 1},
		},
		{
			name:     "subscribe ok",
			payload:  `{"SubscribeResult":"Ok"}`,
			expected: SubscribeResult{},
		},
		{
			name:     "subscribe error",
			payload:  `{"SubscribeResult":{"Err":"InvalidName"}}`,
			expected: SubscribeResult{Err: SubscribeErrorInvalidName},
		},
		{
			name: "leader board",
			payload: `{"PublicLeaderBoard":[
				{"name":"alice","stream_id":"127.0.0.1:5001","score":10,"steps":3,"is_active":true,"total_used_time":1.5},
				{"name":"bob","stream_id":"127.0.0.1:5002","score":-2,"steps":1,"is_active":false,"total_used_time":0.25}]}`,
			expected: PublicLeaderBoard{
				{Name: "alice", StreamID: "127.0.0.1:5001", Score: 10, Steps: 3, IsActive: true, TotalUsedTime: 1.5},
				{Name: "bob", StreamID: "127.0.0.1:5002", Score: -2, Steps: 1, IsActive: false, TotalUsedTime: 0.25},
			},
		},
		{
			name:     "hash cash challenge",
			payload:  `{"Challenge":{"MD5HashCash":{"complexity":9,"message":"hello"}}}`,
			expected: Challenge{Input: MD5HashCashInput{Complexity: 9, Message: "hello"}},
		},
		{
			name:     "maze challenge",
			payload:  `{"Challenge":{"MonstrousMaze":{"grid":"│Y M X│","endurance":2}}}`,
			expected: Challenge{Input: MonstrousMazeInput{Grid: "│Y M X│", Endurance: 2}},
		},
		{
			name:    "recover secret challenge",
			payload: `{"Challenge":{"RecoverSecret":{"word_count":2,"letters":"t cCehuCethoCeschouC'schout h","tuple_sizes":[3,4,5,7,7,3]}}}`,
			expected: Challenge{Input: RecoverSecretInput{
				WordCount:  2,
				Letters:    "t cCehuCethoCeschouC'schout h",
				TupleSizes: []uint{3, 4, 5, 7, 7, 3},
			}},
		},
		{
			name: "round summary",
			payload: `{"RoundSummary":{"challenge":"MD5HashCash","chain":[
				{"name":"alice","value":{"Ok":{"used_time":0.5,"next_target":"bob"}}},
				{"name":"bob","value":{"BadResult":{"used_time":1.0,"next_target":"alice"}}},
				{"name":"carol","value":"Unreachable"},
				{"name":"dave","value":"Timeout"}]}}`,
			expected: RoundSummary{
				Challenge: "MD5HashCash",
				Chain: []ReportedChallengeResult{
					{Name: "alice", Value: ChallengeValue{Kind: ChallengeValueOk, UsedTime: 0.5, NextTarget: "bob"}},
					{Name: "bob", Value: ChallengeValue{Kind: ChallengeValueBadResult, UsedTime: 1.0, NextTarget: "alice"}},
					{Name: "carol", Value: ChallengeValue{Kind: ChallengeValueUnreachable}},
					{Name: "dave", Value: ChallengeValue{Kind: ChallengeValueTimeout}},
				},
			},
		},
		{
			name:    "end of game",
			payload: `{"EndOfGame":{"leader_board":[{"name":"alice","stream_id":"s","score":3,"steps":9,"is_active":true,"total_used_time":4}]}}`,
			expected: EndOfGame{LeaderBoard: PublicLeaderBoard{
				{Name: "alice", StreamID: "s", Score: 3, Steps: 9, IsActive: true, TotalUsedTime: 4},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			message, err := UnmarshalMessage([]byte(tc.payload))
			require.NoError(t, err)
			require.Equal(t, tc.expected, message)
			require.Equal(t, tc.expected.Type(), message.Type())

			// What we send must be readable by the same decoder.
			payload, err := MarshalMessage(message)
			require.NoError(t, err)
			require.JSONEq(t, tc.payload, string(payload))
		})
	}
}

func TestUnmarshalInvalidMessages(t *testing.T) {
	payloads := []string{
		``,
		`42`,
		`{}`,
		`"Goodbye"`,
		`{"Welcome":{"version":1},"Hello":null}`,
		`{"Welcome":{"version":"one"}}`,
		`{"Welcome"}`,
		`{"Challenge":{"Sudoku":{}}}`,
		`{"Challenge":"MD5HashCash"}`,
		`{"SubscribeResult":{"Err":"Banned"}}`,
		`{"RoundSummary":{"challenge":"x","chain":[{"name":"a","value":"Maybe"}]}}`,
	}

	for _, payload := range payloads {
		_, err := UnmarshalMessage([]byte(payload))
		require.Error(t, err, payload)
	}
}

func TestDecodeDoubleEncodedPayload(t *testing.T) {
	original := `{"Challenge":{"MonstrousMaze":{"grid":"│Y M X│\n│ M  │","endurance":2}}}`
	quoted, err := json.Marshal(original)
	require.NoError(t, err)
	require.Equal(t, byte('"'), quoted[0])

	message, err := Decode(quoted)
	require.NoError(t, err)
	require.Equal(t, Challenge{Input: MonstrousMazeInput{Grid: "│Y M X│\n│ M  │", Endurance: 2}}, message)

	// Plain payloads are left alone.
	message, err = Decode([]byte(original))
	require.NoError(t, err)
	require.Equal(t, MessageTypeChallenge, message.Type())
}

func TestDecodeQuotedWithoutProperEscaping(t *testing.T) {
	payload := []byte(`"{\"Welcome\":{\"version\":1}}` + "\t" + `"`)

	message, err := Decode(payload)
	require.NoError(t, err)
	require.Equal(t, Welcome{Version: 1}, message)
}

func TestDecodeBareTag(t *testing.T) {
	message, err := Decode([]byte(`"Hello"`))
	require.NoError(t, err)
	require.Equal(t, Hello{}, message)

	message, err = Decode([]byte(`"\"Hello\""`))
	require.NoError(t, err)
	require.Equal(t, Hello{}, message)
}

func TestDecodeProtocolError(t *testing.T) {
	for _, payload := range [][]byte{
		[]byte(`{"Unknown":{}}`),
		[]byte(`{not json`),
		{0xff, 0xfe, 0xfd},
	} {
		_, err := Decode(payload)
		require.Error(t, err)

		var protocolErr *ProtocolError
		require.True(t, errors.As(err, &protocolErr), "%T", err)
	}
}

func TestEncodeFrame(t *testing.T) {
	frame, err := Encode(Subscribe{Name: "me"})
	require.NoError(t, err)

	expected := `{"Subscribe":{"name":"me"}}`
	require.Len(t, frame, FrameHeaderSize+len(expected))
	require.Equal(t, uint32(len(expected)), binary.BigEndian.Uint32(frame[:FrameHeaderSize]))
	require.Equal(t, expected, string(frame[FrameHeaderSize:]))
}

func TestFrameRoundTrip(t *testing.T) {
	buffer := &bytes.Buffer{}

	first := []byte(gofakeit.Sentence(12))
	second := []byte("ünïcødé │Y M X│")

	require.NoError(t, WriteFrame(buffer, first))
	require.NoError(t, WriteFrame(buffer, second))
	require.NoError(t, WriteFrame(buffer, nil))

	payload, err := ReadFrame(buffer)
	require.NoError(t, err)
	require.Equal(t, first, payload)

	payload, err = ReadFrame(buffer)
	require.NoError(t, err)
	require.Equal(t, second, payload)

	payload, err = ReadFrame(buffer)
	require.NoError(t, err)
	require.Empty(t, payload)

	_, err = ReadFrame(buffer)
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.ErrorIs(t, err, io.EOF)
}

func TestReadFrameShortPayload(t *testing.T) {
	frame := EncodeFrame([]byte(`{"Welcome":{"version":1}}`))
	truncated := bytes.NewReader(frame[:len(frame)-5])

	_, err := ReadFrame(truncated)
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFrameShortHeader(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader([]byte{0, 0}))

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFrameTooLarge(t *testing.T) {
	header := make([]byte, FrameHeaderSize)
	binary.BigEndian.PutUint32(header, MaxFrameSize+1)

	_, err := ReadFrame(bytes.NewReader(header))

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
}

func TestLeaderBoardLast(t *testing.T) {
	_, ok := PublicLeaderBoard{}.Last()
	require.False(t, ok)

	board := PublicLeaderBoard{{Name: gofakeit.Username()}, {Name: "last"}}
	last, ok := board.Last()
	require.True(t, ok)
	require.Equal(t, "last", last.Name)
}
