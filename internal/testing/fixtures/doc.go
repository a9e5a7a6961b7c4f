// Package fixtures provides test data factories for SurrealDB-backed tests.
//
// # Named Factories
//
// Register defines these factories in a factory.Registry:
//
//	user          email, username, bcrypt hash, role "user", timestamps
//	admin         extends user, role "admin"
//	moderator     extends user, role "moderator"
//	guild         name, description, visibility "private", timestamps
//	public_guild  extends guild, visibility "public"
//
// # Creating Test Data
//
//	c := fixtures.New(tdb.DB)
//	user := c.CreateUser(t)                                   // user_1@test.local
//	user := c.CreateUser(t, factory.Attributes{"email": "X@Example.com"}) // stored lowercased
//	guild := c.CreateGuild(t, user)                           // user linked as admin
//
// # Unique Values
//
// Emails, usernames and guild names come from the lineage sequence, so
// every record created through one catalog is distinct.
package fixtures
