// Package schema checks serialized canonical documents against the minimal
// shape the compiler's test suite expects, and describes that shape as a JSON
// Schema.
//
// Validate works on raw bytes rather than decoded graphs so that it can report
// every problem in a document that would not decode at all.
package schema
