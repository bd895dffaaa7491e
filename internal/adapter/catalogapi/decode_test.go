package catalogapi

import (
	"testing"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCollection(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	t.Run("BareArray", func(t *testing.T) {
		vs, err := decodeCollection[item]([]byte(` [{"id":1},{"id":2}]`))
		require.NoError(t, err)
		assert.Equal(t, []item{{1}, {2}}, vs)
	})

	t.Run("Envelope", func(t *testing.T) {
		vs, err := decodeCollection[item](
			[]byte(`{"items":[{"id":3}],"total":1,"skip":0,"limit":10}`),
		)
		require.NoError(t, err)
		assert.Equal(t, []item{{3}}, vs)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		vs, err := decodeCollection[item]([]byte(`[]`))
		require.NoError(t, err)
		assert.NotNil(t, vs)
		assert.Empty(t, vs)
	})

	malformed := map[string]string{
		"Empty":           ``,
		"Null":            `null`,
		"String":          `"oops"`,
		"EnvelopeNoItems": `{"total":0}`,
		"ItemsNotArray":   `{"items":{"id":1}}`,
		"Truncated":       `[{"id":1}`,
	}
	for name, body := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCollection[item]([]byte(body))
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "Email đã được sử dụng",
		errorDetail([]byte(`{"detail":"Email đã được sử dụng"}`)))
	assert.Equal(t, "field required",
		errorDetail([]byte(`{"detail":[{"loc":["body"],"msg":"field required"}]}`)))
	assert.Equal(t, "", errorDetail([]byte(`<html>502</html>`)))
	assert.Equal(t, "", errorDetail([]byte(`{"message":"x"}`)))
}
