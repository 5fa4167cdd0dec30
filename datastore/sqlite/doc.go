/*
Package sqlite implements datastore.DataStore[T] over an embedded SQLite
database (modernc.org/sqlite).

A Mapper binds one registered entity descriptor to one executor source and
translates between typed instances and rows: criteria properties are resolved
to validated column names, values pass through the codec in both directions,
and every row read must carry every declared column or hydration fails with
ErrMalformedRow.

Mappers hold no mutable state and perform no caching; every call round-trips
to the engine. The executor source indirection is what lets a unit of work
redirect the same mapper through an open transaction.
*/
package sqlite
