// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of the two graph
// documents this tool works with: the editor-format document exported by a
// visual dataflow editor, and the canonical node list persisted as a compiler
// test fixture.
//
// # Core Concepts
//
//   - EditorDocument: The transient input. A flat list of RawNode values plus a
//     separate list of RawEdge values connecting named sockets.
//
//   - CanonicalNode: The normalized form of a node. Its Inputs fold every
//     incoming edge into a socket-to-references mapping, each reference being a
//     joinid.JoinID naming the producing node and socket.
//
//   - Graph: An ordered sequence of CanonicalNode. This is the artifact written
//     to disk and compared verbatim by downstream tests, so it is regenerated
//     wholesale rather than patched.
//
// Why a separate model package?
//
// Builder, sorter, validator and the fixture store all speak the same types.
// Keeping them here, free of any processing logic, lets each stage be tested
// against plain literals.
package model
