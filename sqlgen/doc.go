/*
Package sqlgen compiles entity schemas into parameterized SQLite statement
text. It is a pure function set: no I/O, no driver dependency, nothing cached.

Every identifier embedded in the produced text is drawn from
registry-validated metadata. Caller-supplied free text only ever travels as
bound parameters; criteria keys are resolved through the descriptor's
property→column mapping before they reach this package.

The query surface is deliberately flat: equality conjunctions only, no OR, no
ranges, no negation, no joins.
*/
package sqlgen
