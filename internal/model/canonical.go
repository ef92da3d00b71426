// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the canonical node form: the normalized intermediate
// representation persisted as a fixture's expected output.
//
// Why a canonical form?
//
// The editor format keeps dependencies in a separate edge list, which makes it
// awkward to compare against what a compiler produces. The canonical form folds
// every edge into the node that consumes it, so each node states exactly which
// socket of which node feeds each of its inputs.
package model

import (
	"encoding/json"

	"github.com/specialistvlad/graphfix/internal/joinid"
)

// Options holds a node's free-form configuration, copied verbatim from the
// editor's params. Values are kept as raw JSON so numbers and nested
// structures survive re-serialization unchanged.
type Options struct {
	object[json.RawMessage]
}

// Clone returns an independent copy of the options.
func (o Options) Clone() Options {
	var c Options
	c.init()
	o.each(func(k string, v json.RawMessage) {
		c.set(k, append(json.RawMessage(nil), v...))
	})
	return c
}

// Set stores a raw JSON value under key.
func (o *Options) Set(key string, value json.RawMessage) {
	o.set(key, value)
}

// Inputs maps a socket name to the ordered references feeding it. Both the
// sockets and the references keep their arrival order.
type Inputs struct {
	object[[]joinid.JoinID]
}

// Append adds ref to the end of the socket's reference list.
func (in *Inputs) Append(socket string, ref joinid.JoinID) {
	refs, _ := in.Get(socket)
	in.set(socket, append(refs, ref))
}

// Each calls fn for every reference, socket by socket, in order.
func (in Inputs) Each(fn func(socket string, ref joinid.JoinID)) {
	in.each(func(socket string, refs []joinid.JoinID) {
		for _, ref := range refs {
			fn(socket, ref)
		}
	})
}

// Refs returns every reference in socket order, then arrival order.
func (in Inputs) Refs() []joinid.JoinID {
	var refs []joinid.JoinID
	in.Each(func(_ string, ref joinid.JoinID) {
		refs = append(refs, ref)
	})
	return refs
}

// CanonicalNode is the normalized form of one graph node.
type CanonicalNode struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Options Options `json:"options"`
	Inputs  Inputs  `json:"inputs"`
	// Timeframe and Session are carried through only when present on the
	// source node; they are never synthesized.
	Timeframe json.RawMessage `json:"timeframe,omitempty"`
	Session   json.RawMessage `json:"session,omitempty"`
}

// Graph is an ordered sequence of canonical nodes. A validly ordered graph
// places every referenced node that it contains before the node referencing it.
type Graph []CanonicalNode

// IDs returns the node ids in graph order.
func (g Graph) IDs() []string {
	ids := make([]string, len(g))
	for i, n := range g {
		ids[i] = n.ID
	}
	return ids
}

// Positions indexes the graph by node id. Duplicate ids are rejected.
func (g Graph) Positions() (map[string]int, error) {
	positions := make(map[string]int, len(g))
	for i, n := range g {
		if first, exists := positions[n.ID]; exists {
			return nil, &DuplicateIDError{ID: n.ID, First: first, Second: i}
		}
		positions[n.ID] = i
	}
	return positions, nil
}
