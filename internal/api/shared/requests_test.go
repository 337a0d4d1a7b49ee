package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFields(t *testing.T) {
	t.Run("present_fields_keep_their_json_types", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			bytes.NewReader([]byte(`{"name":"Buy milk","done":true}`)))

		fields, err := DecodeFields(req)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", fields["name"])
		assert.Equal(t, true, fields["done"])
	})

	t.Run("absent_fields_stay_absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			bytes.NewReader([]byte(`{"done":false}`)))

		fields, err := DecodeFields(req)
		require.NoError(t, err)
		_, hasName := fields["name"]
		assert.False(t, hasName)
	})

	t.Run("empty_body_decodes_to_empty_map", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewReader(nil))

		fields, err := DecodeFields(req)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("malformed_json_is_an_error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			bytes.NewReader([]byte(`{"name":`)))

		_, err := DecodeFields(req)
		assert.Error(t, err)
	})
}
