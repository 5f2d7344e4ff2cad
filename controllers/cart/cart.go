package cartControllers

import (
	"errors"

	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidOwner is returned when a cart line doesn't name exactly one
// of customer_id / session_id.
var ErrInvalidOwner = errors.New("exactly one of customer_id or session_id is required")

type CartItemInput struct {
	CustomerID *uint
	SessionID  *string
	ProductID  uint
	Quantity   int
	Size       *string
	Color      *string
}

func ownerScope(q *gorm.DB, customerID *uint, sessionID *string) *gorm.DB {
	if customerID != nil {
		return q.Where("customer_id = ?", *customerID)
	}
	return q.Where("session_id = ?", *sessionID)
}

// NULL size/color matches only NULL, never a concrete value.
func nullableMatch(q *gorm.DB, column string, v *string) *gorm.DB {
	if v == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *v)
}

func lineMatch(q *gorm.DB, customerID *uint, sessionID *string, productID uint, size, color *string) *gorm.DB {
	q = ownerScope(q, customerID, sessionID).Where("product_id = ?", productID)
	q = nullableMatch(q, "size", size)
	return nullableMatch(q, "color", color)
}

// FindExistingCartItem returns the line matching owner+product+size+color,
// or nil when no such line exists.
func FindExistingCartItem(db *gorm.DB, customerID *uint, sessionID *string, productID uint, size, color *string) (*models.CartItem, error) {
	if (customerID == nil) == (sessionID == nil) {
		return nil, ErrInvalidOwner
	}
	var item models.CartItem
	err := lineMatch(db, customerID, sessionID, productID, size, color).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddCartItem accumulates quantity onto an existing matching line or
// inserts a new one, and returns the affected line's id. The lookup and
// increment run in one transaction with the matched row locked, so two
// concurrent adds for the same line can't both read the old quantity.
func AddCartItem(db *gorm.DB, input CartItemInput) (uint, error) {
	if (input.CustomerID == nil) == (input.SessionID == nil) {
		return 0, ErrInvalidOwner
	}

	var product models.Product
	if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		return 0, err
	}

	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := lineMatch(
			tx.Clauses(clause.Locking{Strength: "UPDATE"}),
			input.CustomerID, input.SessionID, input.ProductID, input.Size, input.Color,
		).First(&existing).Error

		if err == nil {
			id = existing.ID
			return tx.Model(&existing).Update("quantity", existing.Quantity+input.Quantity).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item := models.CartItem{
			CustomerID: input.CustomerID,
			SessionID:  input.SessionID,
			ProductID:  input.ProductID,
			Quantity:   input.Quantity,
			Size:       input.Size,
			Color:      input.Color,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		id = item.ID
		return nil
	})
	return id, err
}

// UpdateCartItemQuantity sets a line's quantity. A quantity of zero or
// less removes the line; callers never see a zero-quantity line.
func UpdateCartItemQuantity(db *gorm.DB, cartItemID uint, quantity int) (bool, error) {
	if quantity <= 0 {
		return RemoveCartItem(db, cartItemID)
	}
	result := db.Model(&models.CartItem{}).Where("id = ?", cartItemID).Update("quantity", quantity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func RemoveCartItem(db *gorm.DB, cartItemID uint) (bool, error) {
	result := db.Delete(&models.CartItem{}, cartItemID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func GetCartItemByID(db *gorm.DB, cartItemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := db.First(&item, cartItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func GetCartItemsByCustomerID(db *gorm.DB, customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func GetCartItemsBySessionID(db *gorm.DB, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Where("session_id = ?", sessionID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func ClearCartByCustomerID(db *gorm.DB, customerID uint) error {
	return db.Where("customer_id = ?", customerID).Delete(&models.CartItem{}).Error
}

// MergeGuestCart moves every guest line under sessionID into the
// customer's cart: equivalent customer lines absorb the guest quantity,
// everything else is re-owned in place. Each line merges in its own
// transaction; running the merge again with no new guest activity is a
// no-op.
func MergeGuestCart(db *gorm.DB, sessionID string, customerID uint) error {
	guestItems, err := GetCartItemsBySessionID(db, sessionID)
	if err != nil {
		return err
	}

	for _, guest := range guestItems {
		guest := guest
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.CartItem
			err := lineMatch(
				tx.Clauses(clause.Locking{Strength: "UPDATE"}),
				&customerID, nil, guest.ProductID, guest.Size, guest.Color,
			).First(&existing).Error

			if err == nil {
				if err := tx.Model(&existing).Update("quantity", existing.Quantity+guest.Quantity).Error; err != nil {
					return err
				}
				return tx.Delete(&models.CartItem{}, guest.ID).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			// No equivalent line: hand the guest line to the customer.
			return tx.Model(&models.CartItem{}).Where("id = ?", guest.ID).
				Updates(map[string]interface{}{"customer_id": customerID, "session_id": nil}).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}
