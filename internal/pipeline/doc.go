/*
Package pipeline runs the normalization tools over a directory of fixtures.

Three batch operations are offered:

  - Convert builds each fixture's canonical document from its editor-format
    source and writes it, together with a copy of the script under test, under
    the output root.
  - Fix reorders canonical documents whose nodes are out of topological order.
    Already ordered documents are left byte-for-byte untouched.
  - Validate checks that every fixture is complete and that its canonical
    document has the expected shape.

Fixtures are independent units of work processed in parallel. A failure in
one fixture is recorded in its Result and never stops the others. Results are
reported in fixture name order whatever the scheduling.
*/
package pipeline
