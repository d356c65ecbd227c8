package models

import "strings"

// Category groups expenses. A category with a ParentID is a subcategory of a
// top-level category; nesting deeper than one level is not created by the
// registry.
type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color"`
	ParentID *string `json:"parentId,omitempty"`
}

// IsTopLevel reports whether the category has no parent.
func (c Category) IsTopLevel() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// Fixed ids of the seed categories. These are stable across installs and are
// referenced by legacy data migration.
const (
	CategoryFoodID      = "0190a7d2-4c00-7000-8000-00000000f00d"
	CategoryTransportID = "0190a7d2-4c00-7000-8000-0000000007a5"
	CategoryShoppingID  = "0190a7d2-4c00-7000-8000-00000000500b"
	CategoryFunID       = "0190a7d2-4c00-7000-8000-000000000f0e"
	CategoryOtherID     = "0190a7d2-4c00-7000-8000-0000000000e7"
)

// SeedCategories returns the five default categories in display order.
func SeedCategories() []Category {
	return []Category{
		{ID: CategoryFoodID, Name: "Food", Icon: "fork.knife", Color: "#FF9500"},
		{ID: CategoryTransportID, Name: "Transport", Icon: "car.fill", Color: "#007AFF"},
		{ID: CategoryShoppingID, Name: "Shopping", Icon: "bag.fill", Color: "#AF52DE"},
		{ID: CategoryFunID, Name: "Fun", Icon: "gamecontroller.fill", Color: "#FF2D55"},
		{ID: CategoryOtherID, Name: "Other", Icon: "ellipsis.circle", Color: "#8E8E93"},
	}
}

// IsSeedCategory reports whether id belongs to one of the seed categories.
func IsSeedCategory(id string) bool {
	switch id {
	case CategoryFoodID, CategoryTransportID, CategoryShoppingID, CategoryFunID, CategoryOtherID:
		return true
	}
	return false
}

// legacyCategoryKeys maps the string category keys written by old versions to
// seed ids.
var legacyCategoryKeys = map[string]string{
	"food":      CategoryFoodID,
	"transport": CategoryTransportID,
	"shopping":  CategoryShoppingID,
	"fun":       CategoryFunID,
	"other":     CategoryOtherID,
}

// LegacyCategoryID resolves a legacy string key such as "food". The second
// result is false for unknown keys.
func LegacyCategoryID(key string) (string, bool) {
	id, ok := legacyCategoryKeys[strings.ToLower(strings.TrimSpace(key))]
	return id, ok
}
