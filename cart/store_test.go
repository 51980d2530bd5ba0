package cart

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&SnapshotRecord{}))
	return NewGormStore(db)
}

func TestGormStoreMissingKey(t *testing.T) {
	store := newTestGormStore(t)

	data, err := store.Load("cart:absent")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGormStoreSaveOverwrites(t *testing.T) {
	store := newTestGormStore(t)

	require.NoError(t, store.Save("cart:1", []byte(`[{"id":"a"}]`)))
	require.NoError(t, store.Save("cart:1", []byte(`[]`)))

	data, err := store.Load("cart:1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestCartOverGormStore(t *testing.T) {
	store := newTestGormStore(t)

	c := New("cart:gorm", store)
	_, err := c.AddBeverage("b1", 2)
	require.NoError(t, err)

	c2 := New("cart:gorm", store)
	assert.Equal(t, c.Items(), c2.Items())
	assert.Equal(t, 16.0, c2.Total())
}
