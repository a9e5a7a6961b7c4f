package gen

import (
	"fmt"
	"time"

	"github.com/forgo/forge/pkg/factory"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UUID returns a definition producing a random UUID string.
func UUID() factory.Definition {
	return factory.Func(func() any {
		return uuid.NewString()
	})
}

// Sequence returns a definition formatting the next sequence value with
// format, e.g. Sequence("Guild %d").
func Sequence(format string) factory.Definition {
	return factory.Seq(func(n int64) any {
		return fmt.Sprintf(format, n)
	})
}

// Email returns a definition producing prefix_N@domain.
func Email(prefix, domain string) factory.Definition {
	return factory.Seq(func(n int64) any {
		return fmt.Sprintf("%s_%d@%s", prefix, n, domain)
	})
}

// PasswordHash returns a definition producing a bcrypt hash of plain.
// MinCost keeps fixtures fast. It panics if hashing fails, which only
// happens for passwords longer than 72 bytes.
func PasswordHash(plain string) factory.Definition {
	return factory.Func(func() any {
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
		if err != nil {
			panic(fmt.Errorf("gen: hash password: %w", err))
		}
		return string(hash)
	})
}

// Now returns a definition producing the current UTC time.
func Now() factory.Definition {
	return factory.Func(func() any {
		return time.Now().UTC()
	})
}

// Cycle returns a definition that walks values in order, wrapping around.
// It panics if values is empty.
func Cycle(values ...any) factory.Definition {
	if len(values) == 0 {
		panic("gen: Cycle needs at least one value")
	}
	return factory.Seq(func(n int64) any {
		return values[(n-1)%int64(len(values))]
	})
}
