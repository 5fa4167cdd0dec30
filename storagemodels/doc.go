/*
Package storagemodels defines the data structures shared across EntitySQL's
persistence layer.

Key Types:

Criteria:
An ordered equality-criteria map, built per call and discarded afterwards.
Keys are property names, not column names; the mapper resolves them through
the entity descriptor before any SQL is compiled:

	crit := storagemodels.NewCriteria().
	    Eq("Name", "alice").
	    Eq("Active", true)
	users, err := mapper.FindWhere(ctx, crit)

Updates:
An ordered property→value field set for update operations:

	upd := storagemodels.NewUpdates().Set("Active", false)
	n, err := mapper.UpdateWhere(ctx, crit, upd)

Both types are conjunction-only by design; there is no OR, range, or negation
surface. A nil or empty Criteria selects every row. An empty Updates is an
error at the mapper boundary (ErrNoUpdateFields), distinct from an update
that matches zero rows.
*/
package storagemodels
