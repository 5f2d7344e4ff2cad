package customerControllers_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	customerControllers "github.com/nanoflowsai-afk/prince-and-princess-backend/controllers/customer"
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
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return db
}

func TestCreateCustomerRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	customer, ok, err := customerControllers.CreateCustomer(db, "Asha@Example.com", "s3cret!", "Asha Rao", nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	if assert.NotNil(t, customer) {
		assert.Equal(t, "asha@example.com", customer.Email)
		assert.NotEqual(t, "s3cret!", customer.Password, "password must be stored hashed")
	}

	// Same address with different casing is still a duplicate.
	_, ok, err = customerControllers.CreateCustomer(db, "asha@example.COM", "other", "Asha R", nil)
	assert.NoError(t, err)
	assert.False(t, ok)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAuthenticateCustomer(t *testing.T) {
	db := newTestDB(t)

	_, ok, err := customerControllers.CreateCustomer(db, "meera@example.com", "correct horse", "Meera Iyer", nil)
	assert.NoError(t, err)
	assert.True(t, ok)

	customer, err := customerControllers.AuthenticateCustomer(db, "meera@example.com", "correct horse")
	assert.NoError(t, err)
	assert.NotNil(t, customer)

	customer, err = customerControllers.AuthenticateCustomer(db, "meera@example.com", "wrong horse")
	assert.NoError(t, err)
	assert.Nil(t, customer)

	customer, err = customerControllers.AuthenticateCustomer(db, "nobody@example.com", "correct horse")
	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestApplyCustomerPatch(t *testing.T) {
	db := newTestDB(t)

	created, ok, err := customerControllers.CreateCustomer(db, "ravi@example.com", "pw", "Ravi", nil)
	assert.NoError(t, err)
	assert.True(t, ok)

	name := "Ravi Kumar"
	phone := "+91-9000000000"
	ok, err = customerControllers.ApplyCustomerPatch(db, created.ID, customerControllers.CustomerPatch{
		Name:  &name,
		Phone: &phone,
	})
	assert.NoError(t, err)
	assert.True(t, ok)

	fetched, err := customerControllers.GetCustomerByID(db, created.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, fetched) {
		assert.Equal(t, "Ravi Kumar", fetched.Name)
		if assert.NotNil(t, fetched.Phone) {
			assert.Equal(t, "+91-9000000000", *fetched.Phone)
		}
	}

	// Empty patch writes nothing.
	ok, err = customerControllers.ApplyCustomerPatch(db, created.ID, customerControllers.CustomerPatch{})
	assert.NoError(t, err)
	assert.False(t, ok)
}
