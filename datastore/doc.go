/*
Package datastore defines the core interfaces for EntitySQL's persistence layer.

The main interface is DataStore[T], which provides generic CRUD operations for any entity type T:

	type DataStore[T any] interface {
	    FindAll(ctx context.Context) ([]T, error)
	    FindWhere(ctx context.Context, criteria *storagemodels.Criteria) ([]T, error)
	    FindOne(ctx context.Context, criteria *storagemodels.Criteria) (*T, error)
	    FindByKey(ctx context.Context, key any) (*T, error)
	    Save(ctx context.Context, entity *T) error
	    UpdateWhere(ctx context.Context, criteria *storagemodels.Criteria, updates *storagemodels.Updates) (int64, error)
	    DeleteWhere(ctx context.Context, criteria *storagemodels.Criteria) (int64, error)
	    DeleteByKey(ctx context.Context, key any) error
	    Count(ctx context.Context) (int64, error)
	}

Implementations:
  - sqlite: the embedded SQLite mapper driven by registry metadata
  - mock: in-memory mock implementation for testing

The Executor interface is the boundary with the engine itself: a pair of
prepare-and-execute primitives satisfied by *sql.DB and *sql.Tx alike, which
is what lets a unit of work swap the transaction in underneath a mapper.

The package uses Go generics to ensure type safety at compile time while
maintaining flexibility for different storage backends.
*/
package datastore
