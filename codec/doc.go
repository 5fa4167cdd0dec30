/*
Package codec converts scalar values between their domain representation and
the storage engine's native scalar set.

SQLite stores four scalar shapes this library cares about; each registered
column declares one of the ScalarKind values and the codec handles the rest:

	text      ↔ TEXT      (identity)
	integer   ↔ INTEGER   (identity)
	boolean   ↔ INTEGER   (true→1, false→0; any nonzero integer reads as true)
	timestamp ↔ TEXT      (ISO-8601 via go-openapi/strfmt)

Timestamps round-trip exactly for second-or-finer precision values that were
produced by ToStorage. Nil values pass through unconverted in both directions,
and so do values of unrecognized kinds; the permissive passthrough is a
deliberate escape hatch, not an error.
*/
package codec
