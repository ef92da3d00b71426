/*
Package builder converts an editor-format document into canonical nodes.

The builder is the first stage of the normalization pipeline. It works in
three passes over the raw document:

 1. Validation: every raw node must carry an id and a type, every raw edge all
    four endpoint fields. Node ids must be unique.
 2. Linking: each edge becomes a joinid.JoinID built from its source node and
    socket, appended to the target node's socket in edge order. Several edges
    feeding the same socket form an ordered fan-in list.
 3. Emission: one canonical node per raw node, in document order, with options
    copied from params and the accumulated inputs attached.

The builder does not check that an edge's source node exists. Dangling
references are the sorter's concern, where the configured policy decides
whether they are ignored, reported or rejected.
*/
package builder
