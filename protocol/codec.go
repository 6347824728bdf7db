package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	ErrEmptyEnvelope = errors.New("empty envelope")
	ErrEmptyPayload  = errors.New("empty payload")
)

// Encode wraps payload in an envelope of type t
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("encode: envelope type is empty")
	}
	if payload == nil {
		return nil, errors.Wrapf(ErrEmptyPayload, "encode %q", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %q payload", t)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyEnvelope
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, errors.Wrap(err, "decode envelope")
	}
	if e.T == "" {
		return Envelope{}, errors.Wrap(ErrEmptyEnvelope, "missing type")
	}
	return e, nil
}

// DecodePayload unmarshals the envelope body into T
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 || string(env.P) == "null" {
		return out, errors.Wrapf(ErrEmptyPayload, "type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, errors.Wrapf(err, "decode %q payload", env.T)
	}
	return out, nil
}
