package cardstore

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"chinetonusine-backend/models"
)

// StorageKey is the namespaced key the card blob lives under.
const StorageKey = "chinetonusine_business_cards"

var (
	// ErrNotFound is returned when no card has the requested id.
	ErrNotFound = errors.New("business card not found")
	// ErrStorage is returned when the backend rejected a read or write.
	// Callers can distinguish it from ErrNotFound to report failed writes.
	ErrStorage = errors.New("card storage failed")
)

// NewCard is the caller-supplied part of a card. The store assigns id,
// timestamps and counters.
type NewCard struct {
	Name       string
	SupplierID string
	Data       models.BusinessCardData
	IsDefault  bool
	IsPublic   bool
	Tags       []string
}

// CardPatch is a partial update. Nil fields are left untouched.
type CardPatch struct {
	Name      *string
	Data      *models.BusinessCardData
	IsDefault *bool
	IsPublic  *bool
	Tags      *[]string
}

// Store is the business-card repository. All suppliers' cards live in one
// JSON array under StorageKey and are filtered in memory by supplier id.
// Every read-modify-write runs under the mutex, so concurrent API calls
// cannot lose updates. Invariant: at most one card per supplier has
// IsDefault set after any operation.
type Store struct {
	mu      sync.Mutex
	backend Storage
	now     func() time.Time
}

func NewStore(backend Storage) *Store {
	return &Store{backend: backend, now: time.Now}
}

// load reads the full card array. A missing key is an empty store; an
// unreadable or corrupt blob degrades to the seed card rather than failing,
// so listing operations never error.
func (s *Store) load() []models.SavedBusinessCard {
	data, ok, err := s.backend.Get(StorageKey)
	if err != nil {
		log.Printf("cardstore: read failed, serving seed data: %v", err)
		return seedCards()
	}
	if !ok {
		return nil
	}
	var cards []models.SavedBusinessCard
	if err := json.Unmarshal(data, &cards); err != nil {
		log.Printf("cardstore: corrupt card blob, serving seed data: %v", err)
		return seedCards()
	}
	return cards
}

func (s *Store) persist(cards []models.SavedBusinessCard) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := s.backend.Set(StorageKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// GetSupplierCards returns every card owned by supplierID. It never fails.
func (s *Store) GetSupplierCards(supplierID string) []models.SavedBusinessCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.SavedBusinessCard
	for _, card := range s.load() {
		if card.SupplierID == supplierID {
			out = append(out, card)
		}
	}
	return out
}

// GetCard returns the card with the given id, or ErrNotFound.
func (s *Store) GetCard(cardID string) (*models.SavedBusinessCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, card := range s.load() {
		if card.ID == cardID {
			c := card
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// SaveCard appends a new card. The store assigns the id and timestamps and
// zeroes the counters. When the new card is marked default, every other card
// of the same supplier loses its default flag in the same write.
func (s *Store) SaveCard(input NewCard) (*models.SavedBusinessCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	card := models.SavedBusinessCard{
		ID:         newCardID(now),
		Name:       input.Name,
		Data:       input.Data,
		SupplierID: input.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsDefault:  input.IsDefault,
		IsPublic:   input.IsPublic,
		Tags:       input.Tags,
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}

	cards := s.load()
	if card.IsDefault {
		clearOtherDefaults(cards, card.SupplierID, card.ID)
	}
	cards = append(cards, card)

	if err := s.persist(cards); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard merges patch into the card, refreshes UpdatedAt and re-applies
// the default-flag invariant when the patch sets IsDefault.
func (s *Store) UpdateCard(cardID string, patch CardPatch) (*models.SavedBusinessCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	idx := -1
	for i := range cards {
		if cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	card := &cards[idx]
	if patch.Name != nil {
		card.Name = *patch.Name
	}
	if patch.Data != nil {
		card.Data = *patch.Data
	}
	if patch.IsPublic != nil {
		card.IsPublic = *patch.IsPublic
	}
	if patch.Tags != nil {
		card.Tags = *patch.Tags
	}
	if patch.IsDefault != nil {
		card.IsDefault = *patch.IsDefault
		if card.IsDefault {
			clearOtherDefaults(cards, card.SupplierID, card.ID)
		}
	}
	card.UpdatedAt = s.now()

	if err := s.persist(cards); err != nil {
		return nil, err
	}
	updated := *card
	return &updated, nil
}

// DeleteCard removes the card and reports whether a card was actually
// removed, so calling it twice returns true then false.
func (s *Store) DeleteCard(cardID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	for i := range cards {
		if cards[i].ID == cardID {
			cards = append(cards[:i], cards[i+1:]...)
			if err := s.persist(cards); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// DuplicateCard copies an existing card's data under a new name. The copy is
// never the default card. Lookup and insert happen under a single critical
// section, so a concurrent delete of the source cannot interleave.
func (s *Store) DuplicateCard(cardID, newName string) (*models.SavedBusinessCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	var source *models.SavedBusinessCard
	for i := range cards {
		if cards[i].ID == cardID {
			source = &cards[i]
			break
		}
	}
	if source == nil {
		return nil, ErrNotFound
	}

	now := s.now()
	dup := models.SavedBusinessCard{
		ID:         newCardID(now),
		Name:       newName,
		Data:       source.Data,
		SupplierID: source.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsPublic:   source.IsPublic,
		Tags:       append([]string{}, source.Tags...),
	}
	cards = append(cards, dup)

	if err := s.persist(cards); err != nil {
		return nil, err
	}
	return &dup, nil
}

// IncrementDownloads bumps the card's download counter by one.
func (s *Store) IncrementDownloads(cardID string) error {
	return s.bump(cardID, func(c *models.SavedBusinessCard) { c.Downloads++ })
}

// IncrementShares bumps the card's share counter by one.
func (s *Store) IncrementShares(cardID string) error {
	return s.bump(cardID, func(c *models.SavedBusinessCard) { c.Shares++ })
}

func (s *Store) bump(cardID string, apply func(*models.SavedBusinessCard)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := s.load()
	for i := range cards {
		if cards[i].ID == cardID {
			apply(&cards[i])
			return s.persist(cards)
		}
	}
	return ErrNotFound
}

// clearOtherDefaults drops the default flag from every card of the supplier
// except keepID.
func clearOtherDefaults(cards []models.SavedBusinessCard, supplierID, keepID string) {
	for i := range cards {
		if cards[i].SupplierID == supplierID && cards[i].ID != keepID {
			cards[i].IsDefault = false
		}
	}
}

// newCardID builds ids in the historical shape: millisecond timestamp plus a
// random suffix. The format is observable in stored blobs, so it is kept.
func newCardID(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// math-free fallback, still unique enough with the timestamp
		return fmt.Sprintf("card_%d_%d", now.UnixMilli(), now.Nanosecond())
	}
	return fmt.Sprintf("card_%d_%s", now.UnixMilli(), hex.EncodeToString(buf))
}
