/*
Package entitysql provides a metadata-driven entity mapping layer over an
embedded SQLite database, offering type-safe persistence without runtime
reflection over entity fields.

Entity types declare their schema once, explicitly, through descriptors; a
generic mapper translates typed instances to parameterized SQL and back, and
a unit-of-work coordinator groups mapper operations into atomic transactions.

Key Features:
  - Type-safe operations using Go generics
  - Explicit descriptor registration: no annotations, no struct reflection
  - Registration-time identifier validation as a single injection choke point
  - Upsert save semantics keyed by primary key
  - Flat equality-criteria queries resolved through registered metadata
  - Atomic multi-entity units of work with automatic rollback
  - Semantic error types for better error handling

Basic Usage:

	// Declare metadata and build the registry
	reg := registry.New()
	desc, _ := registry.NewDescriptor[User]("users", idColumn, nameColumn)
	_ = registry.Register(reg, desc)

	// Open the manager, synchronizing schema on startup
	mgr := entitysql.New(config.Config{
	    StoragePath:      "app.db",
	    AutoCreateSchema: true,
	}, reg)
	_ = mgr.Initialize(ctx)
	defer mgr.Shutdown()

	// Per-entity mapper
	users, _ := entitysql.Mapper[User](mgr)
	_ = users.Save(ctx, &User{ID: 1, Name: "alice"})

	// Atomic unit of work across entity types
	coord, _ := mgr.Coordinator()
	err := coord.RunAtomic(ctx, func(c *entitysql.Coordinator) error {
	    users, _ := entitysql.MapperFor[User](c)
	    orders, _ := entitysql.MapperFor[Order](c)
	    if err := users.Save(ctx, &u); err != nil {
	        return err
	    }
	    return orders.Save(ctx, &o)
	})

The library holds one logical connection and runs every operation
synchronously against it; callers that need concurrency serialize their own
access around RunAtomic.

For more information, see the documentation at https://github.com/suparena/entitysql
*/
package entitysql
