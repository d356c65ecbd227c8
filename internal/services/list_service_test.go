package services

import (
	"testing"

	"moneytracker/internal/models"
	"moneytracker/internal/testutil"
)

func TestEnsureDefaultList(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		store, kv := testutil.NewTestStore(t)
		svc := NewListService(store)

		writes := kv.Writes()
		first, err := svc.EnsureDefaultList()
		testutil.AssertNoError(t, err)
		second, err := svc.EnsureDefaultList()
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected the same list, got %s and %s", first.ID, second.ID)
		}
		if len(svc.GetLists()) != 1 {
			t.Errorf("expected one list, got %d", len(svc.GetLists()))
		}
		testutil.AssertNoWrites(t, kv, writes)
	})

	t.Run("case_insensitive_match", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)
		id := testutil.DefaultListID(t, store)

		_, err := svc.RenameList(id, "general")
		testutil.AssertNoError(t, err)
		_, err = svc.EnsureDefaultList()
		testutil.AssertNoError(t, err)

		if len(svc.GetLists()) != 1 {
			t.Errorf("expected lowercase general to count as default, got %+v", svc.GetLists())
		}
	})

	t.Run("inserted_first", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)
		id := testutil.DefaultListID(t, store)

		_, err := svc.AddList("Trip")
		testutil.AssertNoError(t, err)
		_, err = svc.RenameList(id, "Home")
		testutil.AssertNoError(t, err)

		general, err := svc.EnsureDefaultList()
		testutil.AssertNoError(t, err)

		lists := svc.GetLists()
		if len(lists) != 3 || lists[0].ID != general.ID {
			t.Errorf("expected new General at head, got %+v", lists)
		}
	})
}

func TestAddList(t *testing.T) {
	t.Run("selects_new_list", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)

		list, err := svc.AddList("  Groceries ")
		testutil.AssertNoError(t, err)

		if list.Name != "Groceries" {
			t.Errorf("expected trimmed name, got %q", list.Name)
		}
		active, err := svc.ActiveList()
		testutil.AssertNoError(t, err)
		if active.ID != list.ID {
			t.Errorf("expected %s active, got %s", list.ID, active.ID)
		}
		lists := svc.GetLists()
		if lists[len(lists)-1].ID != list.ID {
			t.Error("expected list appended at the end")
		}
	})

	t.Run("blank_name_unchanged", func(t *testing.T) {
		store, kv := testutil.NewTestStore(t)
		svc := NewListService(store)
		writes := kv.Writes()

		_, err := svc.AddList("   ")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		if len(svc.GetLists()) != 1 {
			t.Errorf("expected lists unchanged, got %d", len(svc.GetLists()))
		}
		testutil.AssertNoWrites(t, kv, writes)
	})
}

func TestSelectList(t *testing.T) {
	t.Run("unknown_list", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)

		err := svc.SelectList(models.NewID())
		testutil.AssertAppError(t, err, "LIST_NOT_FOUND")
	})

	t.Run("selection_persists", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)
		other := testutil.CreateTestList(t, store)

		testutil.AssertNoError(t, svc.SelectList(other.ID))

		active, err := svc.ActiveList()
		testutil.AssertNoError(t, err)
		if active.ID != other.ID {
			t.Errorf("expected %s, got %s", other.ID, active.ID)
		}
		if store.Snapshot().SelectedListID != other.ID {
			t.Error("expected selection in snapshot")
		}
	})
}

func TestRenameList(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)

		_, err := svc.RenameList(models.NewID(), "X")
		testutil.AssertAppError(t, err, "LIST_NOT_FOUND")
	})

	t.Run("blank", func(t *testing.T) {
		store, _ := testutil.NewTestStore(t)
		svc := NewListService(store)

		_, err := svc.RenameList(testutil.DefaultListID(t, store), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
