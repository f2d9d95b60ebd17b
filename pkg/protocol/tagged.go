package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// The arbiter speaks externally tagged unions: a variant without data is a
// bare JSON string ("Hello"), a variant with data is an object with exactly
// one key ({"Welcome":{"version":1}}).

func marshalTagged(tag string, value interface{}) ([]byte, error) {
	if value == nil {
		return json.Marshal(tag)
	}
	body, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", tag)
	}
	return json.Marshal(map[string]json.RawMessage{tag: body})
}

func unmarshalTagged(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil, errors.New("empty tagged value")
	}

	switch data[0] {
	case '"':
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return "", nil, errors.Wrap(err, "failed to unmarshal tag")
		}
		return tag, nil, nil

	case '{':
		var object map[string]json.RawMessage
		if err := json.Unmarshal(data, &object); err != nil {
			return "", nil, errors.Wrap(err, "failed to unmarshal tagged object")
		}
		if len(object) != 1 {
			return "", nil, errors.Errorf("tagged object must have exactly one key, got %d", len(object))
		}
		for tag, body := range object {
			return tag, body, nil
		}
	}

	return "", nil, errors.Errorf("unexpected tagged value %q", truncate(data, 32))
}

func unmarshalBody(tag string, body json.RawMessage, v interface{}) error {
	if body == nil {
		return errors.Errorf("%s requires a body", tag)
	}
	return errors.Wrapf(json.Unmarshal(body, v), "failed to unmarshal %s", tag)
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
