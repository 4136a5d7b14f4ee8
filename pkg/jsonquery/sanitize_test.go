package jsonquery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	err := json.Unmarshal([]byte(raw), &v)
	assert.NoError(t, err)
	return v
}

func mustMarshal(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return string(raw)
}

func TestStripKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "key at top level",
			input: `{"name":"Apple Inc","opencorporates_url":"http://x"}`,
			want:  `{"name":"Apple Inc"}`,
		},
		{
			name:  "key nested in arrays and objects",
			input: `{"results":{"companies":[{"company":{"name":"A","opencorporates_url":"u1","registered_address":{"opencorporates_url":"u2","street":"s"}}},{"company":{"name":"B","opencorporates_url":"u3"}}]}}`,
			want:  `{"results":{"companies":[{"company":{"name":"A","registered_address":{"street":"s"}}},{"company":{"name":"B"}}]}}`,
		},
		{
			name:  "array of objects at root",
			input: `[{"opencorporates_url":"u"},{"keep":true}]`,
			want:  `[{},{"keep":true}]`,
		},
		{
			name:  "no occurrence is a no-op",
			input: `{"results":{"company":{"name":"A"}}}`,
			want:  `{"results":{"company":{"name":"A"}}}`,
		},
		{
			name:  "value holding the key name is kept",
			input: `{"field":"opencorporates_url"}`,
			want:  `{"field":"opencorporates_url"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustParse(t, tt.input)
			got := StripKey(v, "opencorporates_url")
			assert.JSONEq(t, tt.want, mustMarshal(t, got))
		})
	}
}

func TestStripKeyMutatesInPlace(t *testing.T) {
	v := mustParse(t, `{"opencorporates_url":"u","nested":{"opencorporates_url":"u"}}`)

	StripKey(v, "opencorporates_url")

	obj := v.(map[string]interface{})
	_, ok := obj["opencorporates_url"]
	assert.False(t, ok)
	nested := obj["nested"].(map[string]interface{})
	_, ok = nested["opencorporates_url"]
	assert.False(t, ok)
}

func TestStripKeyIdempotent(t *testing.T) {
	v := mustParse(t, `{"a":[{"opencorporates_url":"u","b":{"opencorporates_url":"u","c":[1,2]}}]}`)

	first := mustMarshal(t, StripKey(v, "opencorporates_url"))
	second := mustMarshal(t, StripKey(v, "opencorporates_url"))

	assert.Equal(t, first, second)
}

func TestStripKeyPrimitivesPassThrough(t *testing.T) {
	assert.Equal(t, "text", StripKey("text", "k"))
	assert.Equal(t, 42.0, StripKey(42.0, "k"))
	assert.Equal(t, true, StripKey(true, "k"))
	assert.Nil(t, StripKey(nil, "k"))
}
