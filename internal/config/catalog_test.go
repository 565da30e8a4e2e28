package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/pix-checkout/internal/entity"
)

func TestLoadCatalogDefault(t *testing.T) {
	catalog, err := LoadCatalog("")

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCatalog().CourseTitle, catalog.CourseTitle)
	assert.Len(t, catalog.Codes, 7)
}

func TestLoadCatalogFile(t *testing.T) {
	catalog, err := LoadCatalog("testdata/catalog.yaml")

	require.NoError(t, err)
	assert.Equal(t, "Enfermagem em UTI", catalog.CourseTitle)
	assert.True(t, catalog.ListPrice.Equal(decimal.RequireFromString("4990")))
	assert.True(t, catalog.DiscountFraction.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, []string{"uti2025", "UTIVIP"}, catalog.Codes)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("testdata/nao-existe.yaml")
	assert.Error(t, err)
}

func TestParseCatalogPartialKeepsDefaults(t *testing.T) {
	catalog, err := ParseCatalog([]byte("list_price: 1000\n"))

	require.NoError(t, err)
	assert.Equal(t, "Biomedicina Hospitalar", catalog.CourseTitle)
	assert.True(t, catalog.ListPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, catalog.DiscountFraction.Equal(decimal.RequireFromString("0.9")))
}

func TestParseCatalogRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad decimal":      "list_price: abc\n",
		"negative price":   "list_price: -10\n",
		"discount above 1": "discount_fraction: 1.5\n",
		"malformed yaml":   "codes: [a, b\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseCatalog([]byte("list_price: 0\n"))
	assert.ErrorIs(t, err, entity.ErrInvalidCatalog)
}
