package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

var fixture = []Product{
	{ID: "p1", Name: "Trail Running Shoes", Category: "Footwear", Price: 89.99, ImageURL: "/img/shoes.png"},
	{ID: "p2", Name: "Rain Jacket", Category: "Outerwear", Price: 120, ImageURL: "/img/jacket.png"},
	{ID: "p3", Name: "Wool Socks", Category: "footwear", Price: 12.5, ImageURL: "/img/socks.png"},
}

func newService(t *testing.T) (*Service, store.Backend) {
	t.Helper()
	b := store.NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), b, store.ProductsKey, fixture))
	return NewService(NewStoreRepository(b, zap.NewNop())), b
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestListAllKeepsFileOrder(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(got))
}

func TestListAllMissingCatalog(t *testing.T) {
	svc := NewService(NewStoreRepository(store.NewMemoryStore(), zap.NewNop()))

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	got, err := svc.Search(ctx, "SHOE")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(got))

	got, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.Search(ctx, "umbrella")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterByCategoryIgnoresCase(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.FilterByCategory(context.Background(), "FOOTWEAR")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, ids(got))
}

func TestFilterByPriceRangeIsInclusive(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.FilterByPriceRange(context.Background(), 12.5, 89.99)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, ids(got))
}

func TestGet(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.Get(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Rain Jacket", p.Name)

	_, err = svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestEveryCallRereadsTheStore(t *testing.T) {
	svc, b := newService(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, b, store.ProductsKey, fixture[:1]))

	got, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids(got))
}
