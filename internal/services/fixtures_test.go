package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/models"
)

const testPassword = "senha-forte-1"

var cpfSeq atomic.Int64

// createUser inserts an active, approved user; mutate adjusts it before insert.
func createUser(t *testing.T, db *gorm.DB, email string, mutate func(u *models.User)) *models.User {
	t.Helper()
	u := &models.User{
		Email:      email,
		Name:       "Policial " + email,
		CPF:        fmt.Sprintf("%011d", 30000000000+cpfSeq.Add(1)),
		Patent:     "SD",
		IsActive:   true,
		IsApproved: true,
	}
	require.NoError(t, u.SetPassword(testPassword))
	if mutate != nil {
		mutate(u)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{t: t.UTC().Truncate(time.Microsecond)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
