package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"unifeast/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const yamlCatalog = `
items:
  - id: tikka
    name: Chicken Tikka Masala
    restaurant: Curry Corner
    prices: {student: 8.5, staff: 10, visitor: 12}
    allergenTags: [milk, nuts]
    available: true
  - id: salad
    name: Garden Salad
    prices: {student: 4, staff: 5, visitor: 6}
  -
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobCatalog_ItemsFromYAML(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	require.NoError(t, bucket.WriteAll(ctx, "catalog.yaml", []byte(yamlCatalog), nil))

	items, err := NewBlobCatalog(bucket, "catalog.yaml", discardLogger()).Items(ctx)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "tikka", items[0].ID)
	assert.Equal(t, entity.TierPrices{Student: 8.5, Staff: 10, Visitor: 12}, items[0].Prices)
	assert.Equal(t, []string{"milk", "nuts"}, items[0].AllergenTags)
	assert.Equal(t, "salad", items[1].ID)
	assert.Empty(t, items[1].AllergenTags)
}

func TestBlobCatalog_ItemsFromJSON(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	doc := `{"items":[{"id":"wrap","name":"Falafel Wrap","prices":{"student":5,"staff":6,"visitor":7},"allergenTags":["sesame"]}]}`
	require.NoError(t, bucket.WriteAll(ctx, "menu/catalog.json", []byte(doc), nil))

	items, err := NewBlobCatalog(bucket, "menu/catalog.json", discardLogger()).Items(ctx)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Falafel Wrap", items[0].Name)
}

func TestBlobCatalog_MissingObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := NewBlobCatalog(bucket, "catalog.yaml", discardLogger()).Items(context.Background())

	assert.Error(t, err)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode("catalog.csv", []byte("id,name"))

	assert.ErrorContains(t, err, "unsupported catalog format")
}

func TestDecode_MalformedYAML(t *testing.T) {
	_, err := Decode("catalog.yml", []byte("items: [unterminated"))

	assert.Error(t, err)
}
