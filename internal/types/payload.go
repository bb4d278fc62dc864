// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PayloadField is a single captured key/value pair.
type PayloadField struct {
	Key   string
	Value string
}

// Payload is the ordered key/value mapping captured by a form submission.
// Order is the capture order and survives a JSON round trip, which keeps
// CSV rendering deterministic.
type Payload []PayloadField

func (p Payload) Get(key string) (string, bool) {
	for _, f := range p {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("payload: expected JSON object")
	}

	out := Payload{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("payload: expected string key")
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		var val string
		switch v := valTok.(type) {
		case string:
			val = v
		case json.Number:
			val = v.String()
		case bool:
			val = strconv.FormatBool(v)
		case nil:
			val = ""
		default:
			return fmt.Errorf("payload: unsupported value for key %q", key)
		}

		out = append(out, PayloadField{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}
