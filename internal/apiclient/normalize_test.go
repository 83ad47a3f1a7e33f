package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2},
		{"empty array", `[]`, 0},
		{"content wrapper", `{"content":[{"id":1}],"page":0,"totalPages":3}`, 1},
		{"data wrapper", `{"data":[{"id":1},{"id":2},{"id":3}]}`, 3},
		{"content wins over data", `{"content":[{"id":1}],"data":[{"id":2},{"id":3}]}`, 1},
		{"content not an array falls back to data", `{"content":"nope","data":[{"id":2}]}`, 1},
		{"object without list fields", `{"id":1,"title":"x"}`, 0},
		{"null", `null`, 0},
		{"scalar", `42`, 0},
		{"string", `"hello"`, 0},
		{"malformed", `{"content":`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]byte(tt.body))
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestNormalizeKeepsBareSequenceUnchanged(t *testing.T) {
	body := `[{"id":9,"name":"General"},{"id":10,"name":"Random"}]`

	items, err := decodeList[Category]([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, []Category{
		{ID: 9, Name: "General"},
		{ID: 10, Name: "Random"},
	}, items)
}

func TestDecodeListFromEnvelope(t *testing.T) {
	body := `{"content":[{"id":1,"title":"Go"}],"page":0}`

	forums, err := decodeList[Forum]([]byte(body))
	assert.NoError(t, err)
	assert.Len(t, forums, 1)
	assert.Equal(t, int64(1), forums[0].ID)
	assert.Equal(t, "Go", forums[0].Title)
}
