package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the shape of a field value, decided once when the payload is read.
type Kind int

const (
	KindNull Kind = iota
	KindEmptyString
	KindEmptyList
	KindSingleton
	KindMany
	KindMapping
	KindScalar
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindEmptyString:
		return "empty-string"
	case KindEmptyList:
		return "empty-list"
	case KindSingleton:
		return "singleton"
	case KindMany:
		return "many"
	case KindMapping:
		return "mapping"
	default:
		return "scalar"
	}
}

// Value is a classified JSON value.
type Value struct {
	kind  Kind
	raw   interface{}
	items []interface{}
}

// Classify decides the shape of a decoded JSON value. Lists are checked
// before mappings so an empty list can never be rendered as a mapping.
func Classify(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Value{kind: KindNull}
	case string:
		if t == "" {
			return Value{kind: KindEmptyString, raw: t}
		}
		return Value{kind: KindScalar, raw: t}
	case []interface{}:
		switch len(t) {
		case 0:
			return Value{kind: KindEmptyList, raw: t}
		case 1:
			return Value{kind: KindSingleton, raw: t, items: t}
		default:
			return Value{kind: KindMany, raw: t, items: t}
		}
	case map[string]interface{}, Record:
		return Value{kind: KindMapping, raw: t}
	default:
		return Value{kind: KindScalar, raw: t}
	}
}

// Kind returns the classified shape.
func (v Value) Kind() Kind {
	return v.kind
}

// Render returns the key/value table form of the value.
func (v Value) Render() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindEmptyString:
		return "''"
	case KindEmptyList:
		return "[ ]"
	case KindSingleton:
		return "[ " + compactJSON(v.items[0]) + " ]"
	case KindMany:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = compactJSON(item)
		}
		return "[ " + strings.Join(parts, ",") + " ]"
	case KindMapping:
		return compactJSON(v.raw)
	case KindScalar:
		return scalarString(v.raw)
	}
	panic(fmt.Sprintf("unhandled value kind %d", v.kind))
}

// Cell returns the list table form: absent and null values are blank.
func (v Value) Cell() string {
	switch v.kind {
	case KindNull, KindEmptyString:
		return ""
	default:
		return v.Render()
	}
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// compactJSON encodes v without HTML escaping and without a trailing newline.
func compactJSON(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Record is a JSON object whose fields keep the order the server sent them in.
type Record = *orderedmap.OrderedMap[string, interface{}]

// NewRecord returns an empty record.
func NewRecord() Record {
	return orderedmap.New[string, interface{}]()
}

// DecodeRecord decodes one JSON object. A null or empty payload yields an
// empty record.
func DecodeRecord(data []byte) (Record, error) {
	record := NewRecord()
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return record, nil
	}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("expected a JSON object: %w", err)
	}
	return record, nil
}

// DecodeRecords decodes a JSON array of objects.
func DecodeRecords(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		record, err := DecodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Keys returns the record field names in order.
func Keys(record Record) []string {
	keys := make([]string, 0, record.Len())
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Field returns the classified value of a field; absent fields are null.
func Field(record Record, key string) Value {
	v, ok := record.Get(key)
	if !ok {
		return Value{kind: KindNull}
	}
	return Classify(v)
}
