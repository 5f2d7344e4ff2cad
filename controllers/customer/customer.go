package customerControllers

import (
	"errors"
	"strings"

	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateCustomer registers a customer. Returns false (not an error) when
// the email is already registered.
func CreateCustomer(db *gorm.DB, email, password, name string, phone *string) (*models.Customer, bool, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, false, err
	}

	customer := models.Customer{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hash,
		Name:     name,
		Phone:    phone,
	}
	if err := db.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &customer, true, nil
}

func GetCustomerByEmail(db *gorm.DB, email string) (*models.Customer, error) {
	var customer models.Customer
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func GetCustomerByID(db *gorm.DB, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := db.First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// AuthenticateCustomer returns the customer on a correct email/password
// pair, nil otherwise. Unknown email and wrong password are
// indistinguishable to the caller.
func AuthenticateCustomer(db *gorm.DB, email, password string) (*models.Customer, error) {
	customer, err := GetCustomerByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if customer == nil || !checkPassword(password, customer.Password) {
		return nil, nil
	}
	return customer, nil
}

// CustomerPatch is a partial profile update; only present fields change.
type CustomerPatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func ApplyCustomerPatch(db *gorm.DB, id uint, patch CustomerPatch) (bool, error) {
	updates := make(map[string]interface{})
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if len(updates) == 0 {
		return false, nil
	}
	result := db.Model(&models.Customer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
