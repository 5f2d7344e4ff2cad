package categoryControllers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nanoflowsai-afk/prince-and-princess-backend/models"
	"gorm.io/gorm"
)

// UncategorizedName is the sentinel category that absorbs products when
// their category is deleted.
const UncategorizedName = "Uncategorized"

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives the URL slug from a category name: lowercase, special
// characters stripped, runs of whitespace/underscores/hyphens collapsed
// to a single hyphen. Deterministic for a given name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// AddCategory inserts a category. Returns false (not an error) when the
// name already exists.
func AddCategory(db *gorm.DB, name string) (bool, error) {
	category := models.Category{
		Name: strings.TrimSpace(name),
		Slug: Slugify(name),
	}
	if err := db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RenameCategory renames a category and rewrites every product row that
// references the old name, inside one transaction. Returns false when
// the new name is already taken. Renaming an absent category is a no-op
// that still reports success.
func RenameCategory(db *gorm.DB, oldName, newName string) (bool, error) {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Category{}).Where("name = ?", oldName).
			Updates(map[string]interface{}{"name": newName, "slug": Slugify(newName)}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).Where("category = ?", oldName).
			Update("category", newName).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteCategory reassigns every product under the category to the
// sentinel (creating the sentinel if needed), deletes the category row,
// and returns how many products were reassigned. All-or-nothing: any
// failure rolls the whole transaction back.
func DeleteCategory(db *gorm.DB, name string) (int64, error) {
	name = strings.TrimSpace(name)

	var reassigned int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var sentinel models.Category
		err := tx.Where("name = ?", UncategorizedName).First(&sentinel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sentinel = models.Category{Name: UncategorizedName, Slug: Slugify(UncategorizedName)}
			if err := tx.Create(&sentinel).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		result := tx.Model(&models.Product{}).Where("category = ?", name).
			Update("category", UncategorizedName)
		if result.Error != nil {
			return result.Error
		}
		reassigned = result.RowsAffected

		return tx.Where("name = ?", name).Delete(&models.Category{}).Error
	})
	if err != nil {
		return 0, err
	}
	return reassigned, nil
}

// CategoryExists reports whether a category row with the name exists.
func CategoryExists(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Model(&models.Category{}).Where("name = ?", strings.TrimSpace(name)).Count(&count).Error
	return count > 0, err
}

// GetAllCategories returns all category names, sorted.
func GetAllCategories(db *gorm.DB) ([]string, error) {
	var names []string
	err := db.Model(&models.Category{}).Order("name ASC").Pluck("name", &names).Error
	return names, err
}
