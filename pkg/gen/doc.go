// Package gen provides ready-made attribute definitions for factories.
//
//	users := factory.New(record.Model(db, "user")).
//	    Set("id", gen.UUID()).
//	    Set("email", gen.Email("user", "test.local")).   // user_1@test.local
//	    Set("hash", gen.PasswordHash("testpass123")).
//	    Set("role", gen.Cycle("user", "moderator"))
package gen
