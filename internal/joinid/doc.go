// internal/joinid/doc.go

/*
Package joinid provides a structured, type-safe representation for join
identifiers: the references a canonical node uses to name one output socket
of another node.

The canonical text format is `<node>#<socket>`, e.g. `sma_fast#result`.

The delimiter is rejected inside both components, so every accepted JoinID
round-trips through its text form. All formatting and parsing of join
identifiers goes through this package.
*/
package joinid
