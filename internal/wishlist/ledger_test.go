package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/validation"
)

func newLedger() (*Ledger, store.Backend) {
	b := store.NewMemoryStore()
	return NewLedger(NewStoreRepository(b, zap.NewNop()), nil, zap.NewNop(), nil), b
}

func item(t *testing.T, body string) Item {
	t.Helper()
	var it Item
	require.NoError(t, json.Unmarshal([]byte(body), &it))
	return it
}

func TestAddItemIsIdempotent(t *testing.T) {
	l, _ := newLedger()
	ctx := context.Background()

	added, err := l.AddItem(ctx, "maria", item(t, `{"id":"p1","name":"Jacket"}`))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = l.AddItem(ctx, "maria", item(t, `{"id":"p1","name":"Jacket v2"}`))
	require.NoError(t, err)
	assert.False(t, added)

	items, err := l.Get(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"id":"p1","name":"Jacket"}`, string(items[0].Raw()))
}

func TestAddItemStoresSnapshotVerbatim(t *testing.T) {
	l, b := newLedger()
	ctx := context.Background()

	body := `{"id":"p9","name":"Lamp","price":42.5,"extra":{"color":"teal"},"tags":["home"]}`
	_, err := l.AddItem(ctx, "maria", item(t, body))
	require.NoError(t, err)

	raw, err := b.Get(ctx, "wishlists/maria_wishlist.json")
	require.NoError(t, err)
	assert.JSONEq(t, "["+body+"]", string(raw))
}

func TestAddItemWithoutIDFails(t *testing.T) {
	l, _ := newLedger()

	_, err := l.AddItem(context.Background(), "maria", item(t, `{"name":"nameless"}`))
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Fields[0].Field)
}

func TestNumericIDs(t *testing.T) {
	it := item(t, `{"id": 42, "name": "Mug"}`)
	assert.Equal(t, "42", it.ID)
}

func TestRemoveItem(t *testing.T) {
	l, _ := newLedger()
	ctx := context.Background()

	for _, body := range []string{`{"id":"p1"}`, `{"id":"p2"}`} {
		_, err := l.AddItem(ctx, "maria", item(t, body))
		require.NoError(t, err)
	}

	removed, err := l.RemoveItem(ctx, "maria", "p1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = l.RemoveItem(ctx, "maria", "p1")
	require.NoError(t, err)
	assert.False(t, removed)

	items, err := l.Get(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestRemoveItemDropsDuplicates(t *testing.T) {
	l, b := newLedger()
	ctx := context.Background()

	require.NoError(t, b.Put(ctx, "wishlists/maria_wishlist.json", []byte(`[{"id":"p1"},{"id":"p1"},{"id":"p2"}]`)))

	removed, err := l.RemoveItem(ctx, "maria", "p1")
	require.NoError(t, err)
	assert.True(t, removed)

	items, err := l.Get(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestClear(t *testing.T) {
	l, _ := newLedger()
	ctx := context.Background()

	_, err := l.AddItem(ctx, "maria", item(t, `{"id":"p1"}`))
	require.NoError(t, err)
	require.NoError(t, l.Clear(ctx, "maria"))
	require.NoError(t, l.Clear(ctx, "maria"))

	items, err := l.Get(ctx, "maria")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNewItemFromStruct(t *testing.T) {
	it, err := NewItem(struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}{ID: "p3", Price: 9})
	require.NoError(t, err)
	assert.Equal(t, "p3", it.ID)
	assert.JSONEq(t, `{"id":"p3","price":9}`, string(it.Raw()))
}

func TestConcurrentAddsWithPaddedUserIDShareOneWishlist(t *testing.T) {
	l, _ := newLedger()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		userID := "maria"
		if i%2 == 1 {
			userID = " maria"
		}
		body := fmt.Sprintf(`{"id":%d}`, i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.AddItem(ctx, userID, item(t, body))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := l.Get(ctx, "maria")
	require.NoError(t, err)
	assert.Len(t, items, 30)
}
