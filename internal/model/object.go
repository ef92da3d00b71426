// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the ordered JSON object used for node options and inputs.
//
// Why ordered?
//
// Canonical fixtures are compared verbatim by the compiler's test suite. A plain
// Go map would re-sort keys on every encode, so a fixture that only needed its
// nodes reordered would also see its option and socket keys shuffled. The
// ordered object keeps keys in the order they were first seen, both when decoded
// from an existing fixture and when accumulated by the graph builder.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// object is an insertion-ordered JSON object with string keys. The zero value
// is an empty object.
type object[V any] struct {
	m *orderedmap.OrderedMap[string, V]
}

func (o *object[V]) init() {
	if o.m == nil {
		o.m = orderedmap.New[string, V]()
	}
}

// Len returns the number of keys.
func (o object[V]) Len() int {
	if o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Get returns the value stored under key.
func (o object[V]) Get(key string) (V, bool) {
	if o.m == nil {
		var zero V
		return zero, false
	}
	return o.m.Get(key)
}

// Keys returns the keys in insertion order.
func (o object[V]) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.each(func(k string, _ V) {
		keys = append(keys, k)
	})
	return keys
}

func (o object[V]) each(fn func(key string, value V)) {
	if o.m == nil {
		return
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func (o *object[V]) set(key string, value V) {
	o.init()
	o.m.Set(key, value)
}

// MarshalJSON encodes the object with its keys in insertion order. The zero
// value encodes as {}. Keys and values are written without HTML escaping, so
// option strings keep their characters when a fixture is rewritten.
func (o object[V]) MarshalJSON() ([]byte, error) {
	if o.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode terminates every value with a newline; it is dropped each time.
	put := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if err := put(pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := put(pair.Value); err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping its key order. A JSON null
// leaves the object empty.
func (o *object[V]) UnmarshalJSON(data []byte) error {
	o.m = orderedmap.New[string, V]()
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	return o.m.UnmarshalJSON(data)
}
