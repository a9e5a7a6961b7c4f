// Package factory builds populated model instances for tests.
//
// A Factory pairs a model constructor with attribute definitions. Build
// resolves the definitions into a fresh attribute tree and calls the
// constructor; Create additionally drives the instance through an
// asynchronous save lifecycle with hooks.
//
// # Definitions
//
// Every attribute is set with an explicit definition kind:
//
//	users := factory.New(record.Model(db, "user")).
//	    Set("role", factory.Literal("user")).
//	    Set("id", factory.Func(func() any { return uuid.NewString() })).
//	    Set("email", factory.Seq(func(n int64) any { return fmt.Sprintf("user%d@test.local", n) })).
//	    Set("address.city", factory.Literal("Lisbon"))
//
// Seq definitions consume one value from the lineage's sequence each time
// they resolve. Dotted names are written as nested maps.
//
// # Lifecycle
//
// Create runs, strictly in order:
//
//	pre:build -> Build -> pre:save -> Save -> post:save -> callback
//
// Each hook receives a continuation. Passing a non-nil error to it aborts
// the remaining hooks and every later stage, and the error reaches the
// Create callback unchanged. Nothing is rolled back: an instance that was
// saved before a post:save hook failed stays saved.
//
// # Inheritance
//
// Extend looks up a named parent in the factory's Registry. The child's own
// definitions win over inherited ones, the lineage shares the root's
// sequence, and every ancestor hook is appended to the child's chains.
//
//	admins, err := factory.New(record.Model(db, "user"), factory.WithRegistry(reg)).
//	    Set("role", factory.Literal("admin")).
//	    Extend("user")
//
// A parent must build the same model type as its child. Extend fails with
// ErrFactoryType when the factory registered under name produces a
// different T, so a lineage always shares one constructor signature.
//
// Factories are configured once and then used. Set, Hook and Extend are
// not safe for concurrent use; Build and Create are.
package factory
