package services

import (
	"sort"
	"strings"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/logger"
	"moneytracker/internal/models"
	"moneytracker/internal/snapshot"
)

// categoryService handles the category registry.
type categoryService struct {
	store *snapshot.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(store *snapshot.Store) CategoryServicer {
	return &categoryService{store: store}
}

// SeedDefaults inserts any missing seed category and returns how many were
// added. Edited seeds are left as they are.
func (s *categoryService) SeedDefaults() (int, error) {
	added := 0
	err := commit(s.store, func(st *snapshot.State) error {
		added = st.SeedCategories()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(name, icon, color string, parentID *string) (*models.Category, error) {
	if isBlank(name) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := models.Category{
		ID:    models.NewID(),
		Name:  strings.TrimSpace(name),
		Icon:  icon,
		Color: color,
	}
	if parentID != nil && *parentID != "" {
		category.ParentID = models.StringPtr(*parentID)
	}

	err := commit(s.store, func(st *snapshot.State) error {
		if err := validateParent(st, category); err != nil {
			return err
		}
		st.Categories = append(st.Categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces the category with the same id.
func (s *categoryService) UpdateCategory(category models.Category) (*models.Category, error) {
	if isBlank(category.Name) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.ParentID != nil && *category.ParentID == "" {
		category.ParentID = nil
	}

	err := commit(s.store, func(st *snapshot.State) error {
		existing := st.Category(category.ID)
		if existing == nil {
			return apperrors.ErrCategoryNotFound
		}
		if err := validateParent(st, category); err != nil {
			return err
		}
		if !category.IsTopLevel() && hasChildren(st, category.ID) {
			return apperrors.WithMessage(apperrors.ErrInvalidParent, "a category with subcategories cannot become a subcategory")
		}
		*existing = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// validateParent keeps nesting at one level: a parent must exist and be
// top-level.
func validateParent(st *snapshot.State, category models.Category) error {
	if category.IsTopLevel() {
		return nil
	}
	if *category.ParentID == category.ID {
		return apperrors.ErrSelfParentCategory
	}
	parent := st.Category(*category.ParentID)
	if parent == nil || !parent.IsTopLevel() {
		return apperrors.ErrInvalidParent
	}
	return nil
}

func hasChildren(st *snapshot.State, id string) bool {
	for _, c := range st.Categories {
		if c.ParentID != nil && *c.ParentID == id {
			return true
		}
	}
	return false
}

// DeleteCategory removes a category with all of its descendants. Expenses in
// any removed category move to "Other" and budgets on them are dropped.
func (s *categoryService) DeleteCategory(categoryID string) error {
	var removed map[string]bool
	var reassigned, droppedBudgets int

	err := commit(s.store, func(st *snapshot.State) error {
		if st.Category(categoryID) == nil {
			return apperrors.ErrCategoryNotFound
		}
		if len(st.Categories) <= 1 {
			return apperrors.ErrLastCategory
		}

		removed = descendants(st.Categories, categoryID)
		for id := range removed {
			if models.IsSeedCategory(id) {
				return apperrors.ErrCategoryProtected
			}
		}
		if len(removed) >= len(st.Categories) {
			return apperrors.ErrLastCategory
		}

		kept := st.Categories[:0]
		for _, c := range st.Categories {
			if !removed[c.ID] {
				kept = append(kept, c)
			}
		}
		st.Categories = kept

		for i := range st.Expenses {
			if removed[st.Expenses[i].CategoryID] {
				st.Expenses[i].CategoryID = models.CategoryOtherID
				reassigned++
			}
		}

		budgets := st.Budgets[:0]
		for _, b := range st.Budgets {
			if b.CategoryID != nil && removed[*b.CategoryID] {
				droppedBudgets++
				continue
			}
			budgets = append(budgets, b)
		}
		st.Budgets = budgets
		return nil
	})
	if err != nil {
		return err
	}

	logger.Named("categories").Infow("category deleted",
		"category_id", categoryID,
		"removed", len(removed),
		"expenses_reassigned", reassigned,
		"budgets_dropped", droppedBudgets,
	)
	return nil
}

// descendants collects rootID and every category below it with an explicit
// worklist. The visited set keeps malformed parent cycles from looping.
func descendants(categories []models.Category, rootID string) map[string]bool {
	children := make(map[string][]string)
	for _, c := range categories {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	closure := map[string]bool{rootID: true}
	stack := []string{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[id] {
			if !closure[child] {
				closure[child] = true
				stack = append(stack, child)
			}
		}
	}
	return closure
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(categoryID string) (*models.Category, error) {
	var found *models.Category
	s.store.Read(func(st *snapshot.State) {
		if c := st.Category(categoryID); c != nil {
			copied := *c
			found = &copied
		}
	})
	if found == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	return found, nil
}

// GetCategories returns every category in stored order.
func (s *categoryService) GetCategories() []models.Category {
	var all []models.Category
	s.store.Read(func(st *snapshot.State) {
		all = append([]models.Category{}, st.Categories...)
	})
	return all
}

// TopLevel returns the categories without a parent, sorted by name.
func (s *categoryService) TopLevel() []models.Category {
	return s.filterSorted(func(c models.Category) bool { return c.IsTopLevel() })
}

// ChildrenOf returns the direct children of parentID, sorted by name.
func (s *categoryService) ChildrenOf(parentID string) []models.Category {
	return s.filterSorted(func(c models.Category) bool {
		return c.ParentID != nil && *c.ParentID == parentID
	})
}

func (s *categoryService) filterSorted(keep func(models.Category) bool) []models.Category {
	out := []models.Category{}
	s.store.Read(func(st *snapshot.State) {
		for _, c := range st.Categories {
			if keep(c) {
				out = append(out, c)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
