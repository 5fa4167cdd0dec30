/*
Package registry manages entity metadata for EntitySQL.

Every entity type is declared once, explicitly, by building an
EntityDescriptor and registering it. There is no annotation scanning and no
struct-field reflection: each column carries its own Get/Set accessor pair,
so the mapping layer never inspects the entity type at runtime (type
identity is the only thing looked up reflectively, as the map key).

	desc, err := registry.NewDescriptor[User]("users",
	    registry.ColumnDescriptor[User]{
	        Property: "ID", Kind: codec.KindInteger, Primary: true,
	        Get: func(u *User) any { return u.ID },
	        Set: func(u *User, v any) error { u.ID = v.(int64); return nil },
	    },
	    registry.ColumnDescriptor[User]{
	        Property: "Name", Column: "name", Kind: codec.KindText,
	        Get: func(u *User) any { return u.Name },
	        Set: func(u *User, v any) error { u.Name = v.(string); return nil },
	    },
	)

	reg := registry.New()
	err = registry.Register(reg, desc)
	desc, err = registry.DescriptorFor[User](reg)

Identifier validation happens at registration, never at query time: table and
column names must match ^[A-Za-z_][A-Za-z0-9_]*$, column names are unique
within a descriptor, and at most one column may be primary. This front-loads
all SQL-injection-relevant checks into a single choke point; the SQL compiler
only ever sees identifiers that came out of a descriptor.

The Registry is an owned instance that the EntityManager threads through
explicitly. It is thread-safe and should be populated during initialization.
*/
package registry
