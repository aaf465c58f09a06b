package cardstore

import (
	"errors"
	"sync"
	"testing"

	"chinetonusine-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() models.BusinessCardData {
	return models.BusinessCardData{
		CompanyName:    "Guangzhou Textile Works",
		ContactName:    "Chen Min",
		JobTitle:       "Sales Director",
		Email:          "chen@gztextile.example",
		Phone:          "+86 20 1234 5678",
		PrimaryColor:   "#0f172a",
		SecondaryColor: "#38bdf8",
		TextColor:      "#f8fafc",
		Template:       models.TemplateClassic,
		FontSize:       models.SizeSmall,
		LogoSize:       models.SizeLarge,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewMemoryStorage())
}

func TestSaveCardAssignsServiceFields(t *testing.T) {
	store := newTestStore(t)

	card, err := store.SaveCard(NewCard{
		Name:       "Main card",
		SupplierID: "s1",
		Data:       sampleData(),
		IsPublic:   true,
		Tags:       []string{"export", "export"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, card.ID)
	assert.False(t, card.CreatedAt.IsZero())
	assert.Equal(t, card.CreatedAt, card.UpdatedAt)
	assert.Zero(t, card.Downloads)
	assert.Zero(t, card.Shares)

	// Round-trip: everything the caller supplied survives as-is.
	got, err := store.GetCard(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main card", got.Name)
	assert.Equal(t, "s1", got.SupplierID)
	assert.Equal(t, sampleData(), got.Data)
	assert.True(t, got.IsPublic)
	assert.Equal(t, []string{"export", "export"}, got.Tags)
}

func TestDefaultFlagExclusivityOnSave(t *testing.T) {
	store := newTestStore(t)

	a, err := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData(), IsDefault: true})
	require.NoError(t, err)
	b, err := store.SaveCard(NewCard{Name: "B", SupplierID: "s1", Data: sampleData(), IsDefault: true})
	require.NoError(t, err)

	cards := store.GetSupplierCards("s1")
	require.Len(t, cards, 2)

	defaults := 0
	for _, c := range cards {
		if c.IsDefault {
			defaults++
			assert.Equal(t, b.ID, c.ID)
		}
		if c.ID == a.ID {
			assert.False(t, c.IsDefault)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestDefaultFlagExclusivityOnUpdate(t *testing.T) {
	store := newTestStore(t)

	a, _ := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData(), IsDefault: true})
	b, _ := store.SaveCard(NewCard{Name: "B", SupplierID: "s1", Data: sampleData()})
	// A card of another supplier must keep its flag.
	other, _ := store.SaveCard(NewCard{Name: "X", SupplierID: "s2", Data: sampleData(), IsDefault: true})

	yes := true
	_, err := store.UpdateCard(b.ID, CardPatch{IsDefault: &yes})
	require.NoError(t, err)

	gotA, err := store.GetCard(a.ID)
	require.NoError(t, err)
	assert.False(t, gotA.IsDefault)

	gotB, err := store.GetCard(b.ID)
	require.NoError(t, err)
	assert.True(t, gotB.IsDefault)

	gotOther, err := store.GetCard(other.ID)
	require.NoError(t, err)
	assert.True(t, gotOther.IsDefault)
}

func TestClearingDefaultDoesNotPromoteAnother(t *testing.T) {
	store := newTestStore(t)

	a, _ := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData(), IsDefault: true})

	no := false
	updated, err := store.UpdateCard(a.ID, CardPatch{IsDefault: &no})
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)

	for _, c := range store.GetSupplierCards("s1") {
		assert.False(t, c.IsDefault)
	}
}

func TestIDUniqueness(t *testing.T) {
	store := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		card, err := store.SaveCard(NewCard{Name: "card", SupplierID: "s1", Data: sampleData()})
		require.NoError(t, err)
		assert.False(t, seen[card.ID], "duplicate id %s", card.ID)
		seen[card.ID] = true
	}
}

func TestUpdateCardPatchesOnlyGivenFields(t *testing.T) {
	store := newTestStore(t)

	card, _ := store.SaveCard(NewCard{
		Name:       "Original",
		SupplierID: "s1",
		Data:       sampleData(),
		IsPublic:   true,
		Tags:       []string{"keep"},
	})

	name := "Renamed"
	updated, err := store.UpdateCard(card.ID, CardPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, sampleData(), updated.Data)
	assert.True(t, updated.IsPublic)
	assert.Equal(t, []string{"keep"}, updated.Tags)
	// CreatedAt has been through a JSON round-trip by now, so compare the
	// instant rather than the representation.
	assert.True(t, updated.CreatedAt.Equal(card.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(card.UpdatedAt))
}

func TestUpdateUnknownCard(t *testing.T) {
	store := newTestStore(t)

	name := "nope"
	_, err := store.UpdateCard("missing", CardPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIdempotence(t *testing.T) {
	store := newTestStore(t)

	card, _ := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData()})

	removed, err := store.DeleteCard(card.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.DeleteCard(card.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSupplierScoping(t *testing.T) {
	store := newTestStore(t)

	store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData()})
	store.SaveCard(NewCard{Name: "B", SupplierID: "s2", Data: sampleData()})
	store.SaveCard(NewCard{Name: "C", SupplierID: "s1", Data: sampleData()})

	cards := store.GetSupplierCards("s1")
	require.Len(t, cards, 2)
	for _, c := range cards {
		assert.Equal(t, "s1", c.SupplierID)
	}
	assert.Empty(t, store.GetSupplierCards("s3"))
}

func TestCounterIncrements(t *testing.T) {
	store := newTestStore(t)

	card, _ := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData()})
	other, _ := store.SaveCard(NewCard{Name: "B", SupplierID: "s1", Data: sampleData()})

	require.NoError(t, store.IncrementDownloads(card.ID))
	require.NoError(t, store.IncrementDownloads(card.ID))
	require.NoError(t, store.IncrementShares(card.ID))

	got, err := store.GetCard(card.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Downloads)
	assert.Equal(t, 1, got.Shares)
	assert.Equal(t, "A", got.Name)

	untouched, err := store.GetCard(other.ID)
	require.NoError(t, err)
	assert.Zero(t, untouched.Downloads)
	assert.Zero(t, untouched.Shares)

	assert.ErrorIs(t, store.IncrementDownloads("missing"), ErrNotFound)
}

func TestDuplicateCard(t *testing.T) {
	store := newTestStore(t)

	src, _ := store.SaveCard(NewCard{
		Name:       "Original",
		SupplierID: "s1",
		Data:       sampleData(),
		IsDefault:  true,
		IsPublic:   true,
		Tags:       []string{"export"},
	})

	dup, err := store.DuplicateCard(src.ID, "Copy")
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "Copy", dup.Name)
	assert.Equal(t, src.Data, dup.Data)
	assert.False(t, dup.IsDefault)
	assert.True(t, dup.IsPublic)
	assert.Zero(t, dup.Downloads)

	// The source keeps its default flag.
	gotSrc, err := store.GetCard(src.ID)
	require.NoError(t, err)
	assert.True(t, gotSrc.IsDefault)

	_, err = store.DuplicateCard("missing", "Copy")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateDeletedCard(t *testing.T) {
	store := newTestStore(t)

	src, _ := store.SaveCard(NewCard{Name: "Original", SupplierID: "s1", Data: sampleData()})
	removed, err := store.DeleteCard(src.ID)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = store.DuplicateCard(src.ID, "Copy")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateConcurrentWithDelete(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 20; i++ {
		src, err := store.SaveCard(NewCard{Name: "Original", SupplierID: "s1", Data: sampleData()})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.DeleteCard(src.ID)
		}()
		go func() {
			defer wg.Done()
			if _, err := store.DuplicateCard(src.ID, "Copy"); err != nil {
				assert.ErrorIs(t, err, ErrNotFound)
			}
		}()
		wg.Wait()

		// Either the duplicate raced in before the delete or the source
		// was already gone; never a copy of a card that no longer existed.
		remaining := store.GetSupplierCards("s1")
		assert.LessOrEqual(t, len(remaining), 1)
		for _, c := range remaining {
			removed, err := store.DeleteCard(c.ID)
			require.NoError(t, err)
			require.True(t, removed)
		}
	}
}

func TestCorruptBlobFallsBackToSeed(t *testing.T) {
	backend := NewMemoryStorage()
	require.NoError(t, backend.Set(StorageKey, []byte("{not json")))
	store := NewStore(backend)

	cards := store.GetSupplierCards("sup-001")
	require.Len(t, cards, 1)
	assert.Equal(t, "card_seed_example", cards[0].ID)
	assert.True(t, cards[0].IsDefault)
}

func TestAbsentStorageIsEmpty(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.GetSupplierCards("sup-001"))
}

type failingStorage struct {
	inner Storage
	fail  bool
}

func (f *failingStorage) Get(key string) ([]byte, bool, error) { return f.inner.Get(key) }

func (f *failingStorage) Set(key string, data []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.inner.Set(key, data)
}

func TestWriteFailureIsSurfaced(t *testing.T) {
	backend := &failingStorage{inner: NewMemoryStorage()}
	store := NewStore(backend)

	card, err := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData()})
	require.NoError(t, err)

	backend.fail = true
	_, err = store.SaveCard(NewCard{Name: "B", SupplierID: "s1", Data: sampleData()})
	assert.ErrorIs(t, err, ErrStorage)

	name := "renamed"
	_, err = store.UpdateCard(card.ID, CardPatch{Name: &name})
	assert.ErrorIs(t, err, ErrStorage)

	_, err = store.DeleteCard(card.ID)
	assert.ErrorIs(t, err, ErrStorage)

	// The failed rename never reached storage.
	backend.fail = false
	got, err := store.GetCard(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(NewFileStorage(dir))

	card, err := store.SaveCard(NewCard{Name: "A", SupplierID: "s1", Data: sampleData(), IsDefault: true})
	require.NoError(t, err)

	// A fresh store over the same directory sees the persisted card.
	reopened := NewStore(NewFileStorage(dir))
	got, err := reopened.GetCard(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.True(t, got.IsDefault)
}
