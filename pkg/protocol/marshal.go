package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

func MarshalMessage(message Message) ([]byte, error) {
	if message == nil {
		return nil, errors.New("nil message")
	}
	switch message.(type) {
	case Hello, *Hello:
		return marshalTagged(string(MessageTypeHello), nil)
	}
	payload, err := marshalTagged(string(message.Type()), message)
	return payload, errors.Wrap(err, "failed to marshal message")
}

func UnmarshalMessage(payload []byte) (Message, error) {
	tag, body, err := unmarshalTagged(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal message")
	}

	var message Message
	switch MessageType(tag) {
	case MessageTypeHello:
		return Hello{}, nil
	case MessageTypeWelcome:
		var m Welcome
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypeSubscribe:
		var m Subscribe
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypeSubscribeResult:
		var m SubscribeResult
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypePublicLeaderBoard:
		var m PublicLeaderBoard
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypeChallenge:
		var m Challenge
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypeChallengeResult:
		var m ChallengeResult
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypeRoundSummary:
		var m RoundSummary
		err = unmarshalBody(tag, body, &m)
		message = m
	case MessageTypeEndOfGame:
		var m EndOfGame
		err = unmarshalBody(tag, body, &m)
		message = m
	default:
		return nil, errors.Errorf("unknown message type %q", tag)
	}

	if err != nil {
		return nil, err
	}
	return message, nil
}

func (c Challenge) MarshalJSON() ([]byte, error) {
	if c.Input == nil {
		return nil, errors.New("challenge has no input")
	}
	return marshalTagged(string(c.Input.Kind()), c.Input)
}

func (c *Challenge) UnmarshalJSON(data []byte) error {
	tag, body, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	switch ChallengeKind(tag) {
	case ChallengeKindMD5HashCash:
		var input MD5HashCashInput
		err = unmarshalBody(tag, body, &input)
		c.Input = input
	case ChallengeKindMonstrousMaze:
		var input MonstrousMazeInput
		err = unmarshalBody(tag, body, &input)
		c.Input = input
	case ChallengeKindRecoverSecret:
		var input RecoverSecretInput
		err = unmarshalBody(tag, body, &input)
		c.Input = input
	default:
		return errors.Errorf("unknown challenge %q", tag)
	}
	return err
}

func (a ChallengeAnswer) MarshalJSON() ([]byte, error) {
	if a.Output == nil {
		return nil, errors.New("challenge answer has no output")
	}
	return marshalTagged(string(a.Output.Kind()), a.Output)
}

func (a *ChallengeAnswer) UnmarshalJSON(data []byte) error {
	tag, body, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	switch ChallengeKind(tag) {
	case ChallengeKindMD5HashCash:
		var output MD5HashCashOutput
		err = unmarshalBody(tag, body, &output)
		a.Output = output
	case ChallengeKindMonstrousMaze:
		var output MonstrousMazeOutput
		err = unmarshalBody(tag, body, &output)
		a.Output = output
	case ChallengeKindRecoverSecret:
		var output RecoverSecretOutput
		err = unmarshalBody(tag, body, &output)
		a.Output = output
	default:
		return errors.Errorf("unknown challenge answer %q", tag)
	}
	return err
}

func (r SubscribeResult) MarshalJSON() ([]byte, error) {
	if r.OK() {
		return marshalTagged("Ok", nil)
	}
	return marshalTagged("Err", r.Err)
}

func (r *SubscribeResult) UnmarshalJSON(data []byte) error {
	tag, body, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	switch tag {
	case "Ok":
		r.Err = ""
		return nil
	case "Err":
		var subscribeErr SubscribeError
		if err = unmarshalBody(tag, body, &subscribeErr); err != nil {
			return err
		}
		switch subscribeErr {
		case SubscribeErrorAlreadyRegistered, SubscribeErrorInvalidName:
			r.Err = subscribeErr
			return nil
		}
		return errors.Errorf("unknown subscribe error %q", subscribeErr)
	}
	return errors.Errorf("unknown subscribe result %q", tag)
}

type challengeValueBody struct {
	UsedTime   float64 `json:"used_time"`
	NextTarget string  `json:"next_target"`
}

func (v ChallengeValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ChallengeValueUnreachable, ChallengeValueTimeout:
		return marshalTagged(string(v.Kind), nil)
	case ChallengeValueBadResult, ChallengeValueOk:
		return marshalTagged(string(v.Kind), challengeValueBody{
			UsedTime:   v.UsedTime,
			NextTarget: v.NextTarget,
		})
	}
	return nil, errors.Errorf("unknown challenge value %q", v.Kind)
}

func (v *ChallengeValue) UnmarshalJSON(data []byte) error {
	tag, body, err := unmarshalTagged(data)
	if err != nil {
		return err
	}

	kind := ChallengeValueKind(tag)
	switch kind {
	case ChallengeValueUnreachable, ChallengeValueTimeout:
		*v = ChallengeValue{Kind: kind}
		return nil
	case ChallengeValueBadResult, ChallengeValueOk:
		var b challengeValueBody
		if err = unmarshalBody(tag, body, &b); err != nil {
			return err
		}
		*v = ChallengeValue{Kind: kind, UsedTime: b.UsedTime, NextTarget: b.NextTarget}
		return nil
	}
	return errors.Errorf("unknown challenge value %q", tag)
}

var _ json.Marshaler = Challenge{}
var _ json.Unmarshaler = (*ChallengeAnswer)(nil)
