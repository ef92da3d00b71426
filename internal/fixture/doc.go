// Package fixture reads and writes compiler test fixtures.
//
// A fixture is a directory holding the script under test, the editor-format
// source of truth and the canonical expected document derived from it. Layout
// names those three files; Discover lists the fixtures under a root.
//
// Documents come in three kinds: empty files, expected-failure documents of the
// form {"error": "..."} and canonical graphs. Graphs are written with two-space
// indentation and a trailing newline, keeping the key order they were read
// with.
package fixture
