package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Normalize flattens a node into map[string]interface{} for records,
// []interface{} for sequences and the untouched value for scalars.
func Normalize(n Node) interface{} {
	switch n.kind {
	case KindRecord:
		m := make(map[string]interface{}, len(n.fields))
		for _, f := range n.fields {
			m[f.Key] = Normalize(f.Value)
		}
		return m
	case KindSequence:
		s := make([]interface{}, 0, len(n.items))
		for _, item := range n.items {
			s = append(s, Normalize(item))
		}
		return s
	default:
		return n.scalar
	}
}

// FromJSON decodes a JSON document into a node. Object keys keep the order
// they were sent in and numbers stay as json.Number.
func FromJSON(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := decodeValue(dec)
	if err != nil {
		return Node{}, fmt.Errorf("error decoding response: [%w]", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Node{}, fmt.Errorf("error decoding response: trailing data after top level value")
	}
	return n, nil
}

// FromStruct converts an SDK struct (or anything that marshals to JSON) into a node
func FromStruct(v interface{}) (Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Node{}, fmt.Errorf("error marshalling response: [%w]", err)
	}
	return FromJSON(data)
}

func decodeValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Node{}, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return Scalar(tok), nil
	}

	switch delim {
	case '{':
		fields := []Field{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return Node{}, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return Node{}, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return Node{}, err
			}
			fields = append(fields, F(key, value))
		}
		// closing brace
		if _, err := dec.Token(); err != nil {
			return Node{}, err
		}
		return Record(fields...), nil
	case '[':
		items := []Node{}
		for dec.More() {
			item, err := decodeValue(dec)
			if err != nil {
				return Node{}, err
			}
			items = append(items, item)
		}
		if _, err := dec.Token(); err != nil {
			return Node{}, err
		}
		return Sequence(items...), nil
	default:
		return Node{}, fmt.Errorf("unexpected delimiter %v", delim)
	}
}
