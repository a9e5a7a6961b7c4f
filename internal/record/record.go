// Package record provides a schemaless model persisted to a SurrealDB table.
//
// Pair it with a factory to create rows for tests:
//
//	users := factory.New(record.Model(db, "user")).
//	    Set("email", gen.Email("user", "test.local"))
//	u, err := users.CreateSync(ctx, nil)
//	// u.ID == "user:..."
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/forgo/forge/internal/database"
	"github.com/forgo/forge/pkg/factory"
	"github.com/forgo/forge/pkg/pathvalue"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const createQuery = `CREATE type::table($table) CONTENT $data`

// Record is a row of Table holding Data. ID is set by Save.
type Record struct {
	Table string
	Data  factory.Attributes
	ID    string

	db database.Database
}

// Model returns a constructor building records for table, saved through db.
func Model(db database.Database, table string) factory.Constructor[*Record] {
	return func(attrs factory.Attributes) *Record {
		return &Record{Table: table, Data: attrs, db: db}
	}
}

// Save inserts the record and captures the id SurrealDB assigned. Errors
// keep the database sentinel in their chain.
func (r *Record) Save(ctx context.Context, done func(error)) {
	result, err := r.db.QueryOne(ctx, createQuery, map[string]interface{}{
		"table": r.Table,
		"data":  content(r.Data),
	})
	if err != nil {
		done(fmt.Errorf("record: create %s: %w", r.Table, err))
		return
	}

	row, ok := result.(map[string]interface{})
	if !ok {
		done(fmt.Errorf("record: create %s: %w: unexpected result %T", r.Table, database.ErrQuery, result))
		return
	}
	r.ID = database.RecordIDString(row["id"])
	done(nil)
}

// Get returns the value at a dotted path of Data.
func (r *Record) Get(path string) (any, bool) {
	return pathvalue.Get(r.Data, path)
}

// content converts values the SurrealDB encoder does not map natively.
func content(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for key, value := range attrs {
		switch v := value.(type) {
		case map[string]any:
			out[key] = content(v)
		case time.Time:
			out[key] = models.CustomDateTime{Time: v}
		default:
			out[key] = value
		}
	}
	return out
}
