package dto

import (
	"encoding/json"
	"testing"

	dom "yuletide/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftRequestFieldsFillsDefaults(t *testing.T) {
	var req GiftRequest
	require.NoError(t, json.Unmarshal([]byte(`{"kid":"Ben","link":null}`), &req))

	assert.Equal(t, dom.GiftFields{Kid: "Ben"}, req.Fields())
}

func TestGiftRequestFieldsAll(t *testing.T) {
	var req GiftRequest
	body := `{"kid":"Olive","item":"Kit","link":"https://x","helper":"Dad","deliveryDate":"Dec 20"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, dom.GiftFields{
		Kid:          "Olive",
		Item:         "Kit",
		Link:         "https://x",
		Helper:       "Dad",
		DeliveryDate: "Dec 20",
	}, req.Fields())
}

func TestGiftRequestCoercesScalars(t *testing.T) {
	tests := []struct {
		name string
		body string
		want dom.GiftFields
	}{
		{"number", `{"item":5}`, dom.GiftFields{Item: "5"}},
		{"fraction", `{"item":2.5}`, dom.GiftFields{Item: "2.5"}},
		{"zero", `{"item":0}`, dom.GiftFields{}},
		{"false", `{"helper":false}`, dom.GiftFields{}},
		{"true", `{"helper":true}`, dom.GiftFields{Helper: "1"}},
		{"null", `{"kid":null}`, dom.GiftFields{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GiftRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Fields())
		})
	}
}

func TestGiftRequestRejectsNested(t *testing.T) {
	for _, body := range []string{`{"kid":{"a":1}}`, `{"item":["x"]}`} {
		var req GiftRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}
