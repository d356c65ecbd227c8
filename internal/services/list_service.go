package services

import (
	"strings"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/snapshot"
)

// listService handles the list registry.
type listService struct {
	store *snapshot.Store
}

// NewListService creates a new ListServicer.
func NewListService(store *snapshot.Store) ListServicer {
	return &listService{store: store}
}

// EnsureDefaultList creates the "General" list at the head when it is missing
// and returns it. Calling it again changes nothing.
func (s *listService) EnsureDefaultList() (*models.ExpenseList, error) {
	var general models.ExpenseList
	err := commit(s.store, func(st *snapshot.State) error {
		st.EnsureDefaultList()
		general = *st.DefaultList()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &general, nil
}

// AddList appends a list and selects it.
func (s *listService) AddList(name string) (*models.ExpenseList, error) {
	if isBlank(name) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "list name is required")
	}

	list := models.ExpenseList{ID: models.NewID(), Name: strings.TrimSpace(name)}
	err := commit(s.store, func(st *snapshot.State) error {
		st.Lists = append(st.Lists, list)
		st.SelectedListID = list.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// RenameList changes a list's name.
func (s *listService) RenameList(listID, name string) (*models.ExpenseList, error) {
	if isBlank(name) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "list name is required")
	}

	var renamed models.ExpenseList
	err := commit(s.store, func(st *snapshot.State) error {
		list := st.List(listID)
		if list == nil {
			return apperrors.ErrListNotFound
		}
		list.Name = strings.TrimSpace(name)
		renamed = *list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &renamed, nil
}

// SelectList makes listID the active list.
func (s *listService) SelectList(listID string) error {
	return commit(s.store, func(st *snapshot.State) error {
		if st.List(listID) == nil {
			return apperrors.ErrListNotFound
		}
		st.SelectedListID = listID
		return nil
	})
}

// ActiveList returns the selected list, or the first list when the selection
// is stale.
func (s *listService) ActiveList() (*models.ExpenseList, error) {
	var active *models.ExpenseList
	s.store.Read(func(st *snapshot.State) {
		if l := st.ActiveList(); l != nil {
			copied := *l
			active = &copied
		}
	})
	if active == nil {
		return nil, apperrors.ErrListNotFound
	}
	return active, nil
}

// GetLists returns every list in stored order.
func (s *listService) GetLists() []models.ExpenseList {
	var lists []models.ExpenseList
	s.store.Read(func(st *snapshot.State) {
		lists = append([]models.ExpenseList{}, st.Lists...)
	})
	return lists
}
