// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the editor-format document: the transient input that a
// visual editor exports and the graph builder consumes.
package model

import "encoding/json"

// RawNode is one node as exported by the editor.
type RawNode struct {
	ID        string          `json:"id" validate:"required"`
	Type      string          `json:"type" validate:"required"`
	Params    Options         `json:"params" validate:"-"`
	Timeframe json.RawMessage `json:"timeframe,omitempty" validate:"-"`
	Session   json.RawMessage `json:"session,omitempty" validate:"-"`
}

// RawEdge connects an output socket of one node to an input socket of another.
type RawEdge struct {
	Source       string `json:"source" validate:"required"`
	SourceHandle string `json:"source_handle" validate:"required"`
	Target       string `json:"target" validate:"required"`
	TargetHandle string `json:"target_handle" validate:"required"`
}

// EditorDocument is the editor's node and edge lists.
type EditorDocument struct {
	Nodes []RawNode `json:"nodes"`
	Edges []RawEdge `json:"edges"`
}
