package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmart/velmart-api/models"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Category: "decor", Price: price, Thumbnail: "images/" + name + ".jpg"}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestUpsertCreatesThenIncrements(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	product := seedProduct(t, db, "vase", 25)

	item, err := carts.Upsert(1, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	item, err = carts.Upsert(1, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count, "repeat adds must not create a second row")
}

func TestUpsertUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)

	_, err := carts.Upsert(1, 999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	product := seedProduct(t, db, "lamp", 40)

	_, err := carts.Upsert(1, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = carts.Upsert(1, product.ID, -4)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSetQuantity(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	product := seedProduct(t, db, "mirror", 60)

	item, err := carts.Upsert(1, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, carts.SetQuantity(1, item.ID, 4))

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 4, reloaded.Quantity)

	assert.ErrorIs(t, carts.SetQuantity(1, item.ID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, carts.SetQuantity(1, 999, 2), ErrNotFound)

	// Another user cannot touch this entry.
	assert.ErrorIs(t, carts.SetQuantity(2, item.ID, 2), ErrNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	product := seedProduct(t, db, "chair", 120)

	item, err := carts.Upsert(1, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, carts.Remove(1, item.ID))
	require.NoError(t, carts.Remove(1, item.ID), "removing an absent entry is a no-op")
	require.NoError(t, carts.Remove(7, 424242))

	lines, err := carts.List(1)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestListReflectsCurrentCatalogPrice(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	product := seedProduct(t, db, "rug", 80)

	_, err := carts.Upsert(1, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&product).Update("price", 95).Error)

	lines, err := carts.List(1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 95.0, lines[0].Price, "cart listing is a live join, not a snapshot")
	assert.Equal(t, "rug", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestClear(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	first := seedProduct(t, db, "table", 300)
	second := seedProduct(t, db, "shelf", 150)

	_, err := carts.Upsert(1, first.ID, 1)
	require.NoError(t, err)
	_, err = carts.Upsert(1, second.ID, 2)
	require.NoError(t, err)
	_, err = carts.Upsert(2, first.ID, 1)
	require.NoError(t, err)

	require.NoError(t, carts.Clear(1))

	lines, err := carts.List(1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = carts.List(2)
	require.NoError(t, err)
	assert.Len(t, lines, 1, "clearing one user must not touch another user's cart")
}
