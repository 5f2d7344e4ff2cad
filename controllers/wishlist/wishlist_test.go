package wishlistControllers_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	wishlistControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/wishlist"
	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.LikedProduct{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return db
}

func TestToggleLikedProduct(t *testing.T) {
	db := newTestDB(t)

	liked, err := wishlistControllers.ToggleLikedProduct(db, 1, 42)
	assert.NoError(t, err)
	assert.True(t, liked)

	isLiked, err := wishlistControllers.IsProductLiked(db, 1, 42)
	assert.NoError(t, err)
	assert.True(t, isLiked)

	// Toggling again removes the like.
	liked, err = wishlistControllers.ToggleLikedProduct(db, 1, 42)
	assert.NoError(t, err)
	assert.False(t, liked)

	isLiked, err = wishlistControllers.IsProductLiked(db, 1, 42)
	assert.NoError(t, err)
	assert.False(t, isLiked)
}

func TestLikedProductsArePerCustomer(t *testing.T) {
	db := newTestDB(t)

	_, err := wishlistControllers.ToggleLikedProduct(db, 1, 42)
	assert.NoError(t, err)
	_, err = wishlistControllers.ToggleLikedProduct(db, 2, 42)
	assert.NoError(t, err)
	_, err = wishlistControllers.ToggleLikedProduct(db, 2, 7)
	assert.NoError(t, err)

	mine, err := wishlistControllers.GetLikedProductsByCustomerID(db, 2)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := wishlistControllers.GetLikedProductsByCustomerID(db, 1)
	assert.NoError(t, err)
	assert.Len(t, theirs, 1)
}
