package categoryControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	categoryControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/category"
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
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return db
}

func seedProducts(t *testing.T, db *gorm.DB, category string, n int) {
	for i := 0; i < n; i++ {
		product := models.Product{
			Name:     fmt.Sprintf("%s item %d", category, i),
			Category: category,
			Price:    199,
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "toys-games", categoryControllers.Slugify("Toys & Games"))
	assert.Equal(t, "party-wear", categoryControllers.Slugify("  Party   Wear  "))
	assert.Equal(t, "new-arrivals", categoryControllers.Slugify("New_Arrivals"))
	assert.Equal(t, "sale", categoryControllers.Slugify("-sale-"))
}

func TestAddCategoryStoresSlugAndRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)

	ok, err := categoryControllers.AddCategory(db, "Toys & Games")
	assert.NoError(t, err)
	assert.True(t, ok)

	var row models.Category
	assert.NoError(t, db.Where("name = ?", "Toys & Games").First(&row).Error)
	assert.Equal(t, "toys-games", row.Slug)

	ok, err = categoryControllers.AddCategory(db, "Toys & Games")
	assert.NoError(t, err)
	assert.False(t, ok, "duplicate name must report a conflict, not an error")

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRenameCategoryPropagatesToProducts(t *testing.T) {
	db := newTestDB(t)

	ok, err := categoryControllers.AddCategory(db, "Boys Wear")
	assert.NoError(t, err)
	assert.True(t, ok)
	seedProducts(t, db, "Boys Wear", 3)

	ok, err = categoryControllers.RenameCategory(db, "Boys Wear", "Boys & Toddlers")
	assert.NoError(t, err)
	assert.True(t, ok)

	var row models.Category
	assert.NoError(t, db.Where("name = ?", "Boys & Toddlers").First(&row).Error)
	assert.Equal(t, "boys-toddlers", row.Slug)

	var stale int64
	db.Model(&models.Product{}).Where("category = ?", "Boys Wear").Count(&stale)
	assert.Zero(t, stale, "no product may keep pointing at the old name")

	var moved int64
	db.Model(&models.Product{}).Where("category = ?", "Boys & Toddlers").Count(&moved)
	assert.EqualValues(t, 3, moved)
}

func TestRenameCategoryConflictLeavesProductsUntouched(t *testing.T) {
	db := newTestDB(t)

	for _, name := range []string{"Shoes", "Accessories"} {
		ok, err := categoryControllers.AddCategory(db, name)
		assert.NoError(t, err)
		assert.True(t, ok)
	}
	seedProducts(t, db, "Shoes", 2)

	ok, err := categoryControllers.RenameCategory(db, "Shoes", "Accessories")
	assert.NoError(t, err)
	assert.False(t, ok)

	var count int64
	db.Model(&models.Product{}).Where("category = ?", "Shoes").Count(&count)
	assert.EqualValues(t, 2, count, "failed rename must roll back product updates")
}

func TestDeleteCategoryReassignsProducts(t *testing.T) {
	db := newTestDB(t)

	ok, err := categoryControllers.AddCategory(db, "Winter Wear")
	assert.NoError(t, err)
	assert.True(t, ok)
	seedProducts(t, db, "Winter Wear", 3)

	reassigned, err := categoryControllers.DeleteCategory(db, "Winter Wear")
	assert.NoError(t, err)
	assert.EqualValues(t, 3, reassigned)

	exists, err := categoryControllers.CategoryExists(db, "Winter Wear")
	assert.NoError(t, err)
	assert.False(t, exists)

	exists, err = categoryControllers.CategoryExists(db, categoryControllers.UncategorizedName)
	assert.NoError(t, err)
	assert.True(t, exists, "sentinel category must exist after the delete")

	var moved int64
	db.Model(&models.Product{}).
		Where("category = ?", categoryControllers.UncategorizedName).Count(&moved)
	assert.EqualValues(t, 3, moved)
}

func TestDeleteCategoryWithoutProducts(t *testing.T) {
	db := newTestDB(t)

	ok, err := categoryControllers.AddCategory(db, "Empty Shelf")
	assert.NoError(t, err)
	assert.True(t, ok)

	reassigned, err := categoryControllers.DeleteCategory(db, "Empty Shelf")
	assert.NoError(t, err)
	assert.Zero(t, reassigned)

	exists, err := categoryControllers.CategoryExists(db, "Empty Shelf")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateCategoryHandlerConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	r := gin.New()
	r.POST("/api/categories", categoryControllers.CreateCategory(db))

	post := func(name string) *httptest.ResponseRecorder {
		payload, _ := json.Marshal(gin.H{"name": name})
		req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, post("Festive Wear").Code)
	assert.Equal(t, http.StatusConflict, post("Festive Wear").Code)
}

func TestGetAllCategoriesSorted(t *testing.T) {
	db := newTestDB(t)

	for _, name := range []string{"Shoes", "Accessories", "Dresses"} {
		ok, err := categoryControllers.AddCategory(db, name)
		assert.NoError(t, err)
		assert.True(t, ok)
	}

	names, err := categoryControllers.GetAllCategories(db)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Dresses", "Shoes"}, names)
}
