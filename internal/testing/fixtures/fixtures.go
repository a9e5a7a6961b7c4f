// Package fixtures defines the named record factories used by tests and by
// the seeder.
//
// Usage:
//
//	c := fixtures.New(tdb.DB)
//	user := c.CreateUser(t)
//	guild := c.CreateGuild(t, user)
package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/forgo/forge/internal/database"
	"github.com/forgo/forge/internal/record"
	"github.com/forgo/forge/pkg/factory"
	"github.com/forgo/forge/pkg/gen"
	"github.com/forgo/forge/pkg/pathvalue"
)

// Factory names registered by Register.
const (
	User        = "user"
	Admin       = "admin"
	Moderator   = "moderator"
	Guild       = "guild"
	PublicGuild = "public_guild"
)

// Attribute values shared with the records they describe.
const (
	DefaultPassword = "testpass123"

	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"

	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Catalog creates records from the named factories of its registry.
type Catalog struct {
	Registry *factory.Registry
	db       database.Database
}

// New returns a catalog with every fixture registered in a fresh registry.
func New(db database.Database, opts ...factory.Option) *Catalog {
	reg := factory.NewRegistry()
	Register(reg, db, opts...)
	return &Catalog{Registry: reg, db: db}
}

// Register defines the fixture factories in reg.
func Register(reg *factory.Registry, db database.Database, opts ...factory.Option) {
	opts = append([]factory.Option{factory.WithRegistry(reg)}, opts...)
	define := func(table string) *factory.Factory[*record.Record] {
		return factory.New(record.Model(db, table), opts...)
	}

	define("user").
		Set("email", gen.Email("user", "test.local")).
		Set("username", gen.Sequence("user_%d")).
		Set("hash", gen.PasswordHash(DefaultPassword)).
		Set("role", factory.Literal(RoleUser)).
		Set("email_verified", factory.Literal(true)).
		Set("created_on", gen.Now()).
		Set("updated_on", gen.Now()).
		Hook(factory.PreSave, normalizeEmail).
		Register(User)

	define("user").
		Set("role", factory.Literal(RoleAdmin)).
		MustExtend(User).
		Register(Admin)

	define("user").
		Set("role", factory.Literal(RoleModerator)).
		MustExtend(User).
		Register(Moderator)

	define("guild").
		Set("name", gen.Sequence("Guild %d")).
		Set("description", factory.Literal("Test guild description")).
		Set("visibility", factory.Literal(VisibilityPrivate)).
		Set("created_on", gen.Now()).
		Set("updated_on", gen.Now()).
		Register(Guild)

	define("guild").
		Set("visibility", factory.Literal(VisibilityPublic)).
		MustExtend(Guild).
		Register(PublicGuild)
}

// normalizeEmail lowercases the email so overrides match unique lookups.
func normalizeEmail(_ context.Context, r *record.Record, next factory.Next) {
	if email, ok := r.Data["email"].(string); ok {
		r.Data["email"] = strings.ToLower(email)
	}
	next(nil)
}

// ctx returns a context with timeout bound to the test
func ctx(t testing.TB) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Generic Fixtures
// ============================================================================

// Create creates a record from the named factory, failing the test on error.
func (c *Catalog) Create(t testing.TB, name string, overrides factory.Attributes) *record.Record {
	t.Helper()

	r, err := c.Seed(ctx(t), name, overrides)
	if err != nil {
		t.Fatalf("fixtures: failed to create %s: %v", name, err)
	}
	return r
}

// Seed creates one record from the named factory.
func (c *Catalog) Seed(ctx context.Context, name string, overrides factory.Attributes) (*record.Record, error) {
	f, err := factory.Lookup[*record.Record](c.Registry, name)
	if err != nil {
		return nil, err
	}
	return f.CreateSync(ctx, overrides)
}

// SeedMany creates count records from the named factory, stopping at the
// first failure.
func (c *Catalog) SeedMany(ctx context.Context, name string, count int) ([]*record.Record, error) {
	f, err := factory.Lookup[*record.Record](c.Registry, name)
	if err != nil {
		return nil, err
	}

	out := make([]*record.Record, 0, count)
	for i := 0; i < count; i++ {
		r, err := f.CreateSync(ctx, nil)
		if err != nil {
			return out, fmt.Errorf("seed %s #%d: %w", name, i+1, err)
		}
		slog.Debug("seeded record", slog.String("factory", name), slog.String("id", r.ID))
		out = append(out, r)
	}
	return out, nil
}

// ============================================================================
// User Fixtures
// ============================================================================

// CreateUser creates a user with optional attribute overrides
func (c *Catalog) CreateUser(t testing.TB, overrides ...factory.Attributes) *record.Record {
	t.Helper()
	return c.Create(t, User, merged(overrides))
}

// CreateAdmin creates an admin user
func (c *Catalog) CreateAdmin(t testing.TB) *record.Record {
	t.Helper()
	return c.Create(t, Admin, nil)
}

// CreateModerator creates a moderator user
func (c *Catalog) CreateModerator(t testing.TB) *record.Record {
	t.Helper()
	return c.Create(t, Moderator, nil)
}

// ============================================================================
// Guild Fixtures
// ============================================================================

// CreateGuild creates a guild with the given user as admin member
func (c *Catalog) CreateGuild(t testing.TB, admin *record.Record, overrides ...factory.Attributes) *record.Record {
	t.Helper()

	guild := c.Create(t, Guild, merged(overrides))
	c.AddMemberToGuild(t, admin, guild, RoleAdmin)
	return guild
}

// AddMemberToGuild creates a member for user and links it to guild with role
func (c *Catalog) AddMemberToGuild(t testing.TB, user, guild *record.Record, role string) {
	t.Helper()
	if err := c.AddMember(ctx(t), user, guild, role); err != nil {
		t.Fatalf("fixtures: %v", err)
	}
}

// AddMember creates a member record for user and relates it to guild.
func (c *Catalog) AddMember(ctx context.Context, user, guild *record.Record, role string) error {
	memberQuery := `
		CREATE member CONTENT {
			name: $name,
			email: $email,
			user: type::record($user_id),
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	result, err := c.db.QueryOne(ctx, memberQuery, map[string]interface{}{
		"name":    user.Data["username"],
		"email":   user.Data["email"],
		"user_id": user.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	row, ok := result.(map[string]interface{})
	if !ok {
		return fmt.Errorf("failed to create member: %w: unexpected result %T", database.ErrQuery, result)
	}
	if row["id"] == nil {
		return fmt.Errorf("failed to create member: %w: missing id", database.ErrQuery)
	}
	memberID := database.RecordIDString(row["id"])

	relateQuery := `
		LET $m = type::record($member_id);
		LET $g = type::record($guild_id);
		RELATE $m->responsible_for->$g SET role = $role;
	`
	if err := c.db.Execute(ctx, relateQuery, map[string]interface{}{
		"member_id": memberID,
		"guild_id":  guild.ID,
		"role":      role,
	}); err != nil {
		return fmt.Errorf("failed to link member to guild: %w", err)
	}
	return nil
}

func merged(overrides []factory.Attributes) factory.Attributes {
	out := factory.Attributes{}
	for _, o := range overrides {
		pathvalue.Merge(out, o)
	}
	return out
}
