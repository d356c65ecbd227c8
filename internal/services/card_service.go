package services

import (
	"strings"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/ledger"
	"moneytracker/internal/logger"
	"moneytracker/internal/models"
	"moneytracker/internal/snapshot"
)

// cardService handles the card ledger.
type cardService struct {
	store *snapshot.Store
}

// NewCardService creates a new CardServicer.
func NewCardService(store *snapshot.Store) CardServicer {
	return &cardService{store: store}
}

// CreateCard creates an active card on the active list.
func (s *cardService) CreateCard(name string, limit float64) (*models.Card, error) {
	if !isFinite(limit) || limit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card limit must be positive")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.DefaultCardName
	}

	card := models.Card{ID: models.NewID(), Name: name, Limit: limit}
	err := commit(s.store, func(st *snapshot.State) error {
		active := st.ActiveList()
		if active == nil {
			return apperrors.ErrListNotFound
		}
		card.ListID = active.ID
		st.Cards = append(st.Cards, card)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func balanceOf(card models.Card, expenses []models.Expense) CardBalance {
	spent := ledger.CardSpent(card, expenses)
	remaining := ledger.Remaining(spent, card.Limit)
	return CardBalance{
		Card:      card,
		Spent:     spent,
		Remaining: remaining,
		Status:    ledger.ClassifyCard(remaining, card.Limit),
	}
}

// GetCardByID returns a card with its balance.
func (s *cardService) GetCardByID(cardID string) (*CardBalance, error) {
	var found *CardBalance
	s.store.Read(func(st *snapshot.State) {
		if c := st.Card(cardID); c != nil {
			b := balanceOf(*c, st.Expenses)
			found = &b
		}
	})
	if found == nil {
		return nil, apperrors.ErrCardNotFound
	}
	return found, nil
}

// GetCards returns the cards of a list with their balances. An empty listID
// returns cards of every list.
func (s *cardService) GetCards(listID string, includeBroken bool) []CardBalance {
	out := []CardBalance{}
	s.store.Read(func(st *snapshot.State) {
		for _, c := range st.Cards {
			if listID != "" && c.ListID != listID {
				continue
			}
			if c.IsBroken && !includeBroken {
				continue
			}
			out = append(out, balanceOf(c, st.Expenses))
		}
	})
	return out
}

// Spent returns the total recorded against a card.
func (s *cardService) Spent(cardID string) (float64, error) {
	b, err := s.GetCardByID(cardID)
	if err != nil {
		return 0, err
	}
	return b.Spent, nil
}

// Remaining returns max(limit - spent, 0) for a card.
func (s *cardService) Remaining(cardID string) (float64, error) {
	b, err := s.GetCardByID(cardID)
	if err != nil {
		return 0, err
	}
	return b.Remaining, nil
}

// BreakCard archives a card regardless of its balance.
func (s *cardService) BreakCard(cardID string) (*models.Card, error) {
	return s.setBroken(cardID, true)
}

// RestoreCard reactivates an archived card regardless of its balance.
func (s *cardService) RestoreCard(cardID string) (*models.Card, error) {
	return s.setBroken(cardID, false)
}

func (s *cardService) setBroken(cardID string, broken bool) (*models.Card, error) {
	var updated models.Card
	err := commit(s.store, func(st *snapshot.State) error {
		card := st.Card(cardID)
		if card == nil {
			return apperrors.ErrCardNotFound
		}
		card.IsBroken = broken
		updated = *card
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCard removes a card. Expenses recorded against it keep their card id.
func (s *cardService) DeleteCard(cardID string) error {
	return commit(s.store, func(st *snapshot.State) error {
		for i := range st.Cards {
			if st.Cards[i].ID == cardID {
				st.Cards = append(st.Cards[:i], st.Cards[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrCardNotFound
	})
}

// AutoBreakExhaustedCards archives every active card whose remaining balance
// is already within epsilon of zero. It returns the number of cards archived.
func (s *cardService) AutoBreakExhaustedCards() (int, error) {
	var broken []string
	err := commit(s.store, func(st *snapshot.State) error {
		for i := range st.Cards {
			card := &st.Cards[i]
			if card.IsBroken {
				continue
			}
			if ledger.IsExhausted(ledger.CardRemaining(*card, st.Expenses)) {
				card.IsBroken = true
				broken = append(broken, card.ID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(broken) > 0 {
		logger.Named("cards").Infow("archived exhausted cards", "count", len(broken), "card_ids", broken)
	}
	return len(broken), nil
}

// recordExpenseAgainstCard checks that the card belongs to listID and can
// absorb amount, runs insert, and archives the card when the insertion
// exhausts it. It must be called inside a snapshot update so a rejection
// leaves nothing inserted.
func recordExpenseAgainstCard(st *snapshot.State, listID, cardID string, amount float64, insert func()) (autoBroken bool, err error) {
	card := st.Card(cardID)
	if card == nil {
		return false, apperrors.ErrCardNotFound
	}
	if card.ListID != listID {
		return false, apperrors.ErrCardListMismatch
	}
	if card.IsBroken {
		return false, apperrors.ErrCardBroken
	}

	remaining := ledger.CardRemaining(*card, st.Expenses)
	if ledger.IsExhausted(remaining) {
		return false, apperrors.ErrCardExhausted
	}
	if amount-remaining > ledger.Epsilon {
		return false, apperrors.ErrCardLimitExceeded
	}

	insert()

	if ledger.IsExhausted(ledger.CardRemaining(*card, st.Expenses)) {
		card.IsBroken = true
		return true, nil
	}
	return false, nil
}
