package document

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KeyOrder(t *testing.T) {
	input := `{"zulu": 1, "alpha": 2, "mike": {"yankee": true, "bravo": null}}`

	obj, err := DecodeObject(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, obj.Keys())

	nested, err := Dig(obj, "mike")
	require.NoError(t, err)
	assert.Equal(t, []string{"yankee", "bravo"}, nested.(*Object).Keys())
}

func TestDecode_ValueTypes(t *testing.T) {
	input := `{"s": "text", "i": 42, "f": 1.5, "b": false, "n": null, "a": [1, "two", {"k": "v"}]}`

	obj, err := DecodeObject(strings.NewReader(input))
	require.NoError(t, err)

	s, _ := obj.Get("s")
	assert.Equal(t, "text", s)

	i, _ := obj.Get("i")
	assert.Equal(t, json.Number("42"), i)

	f, _ := obj.Get("f")
	assert.Equal(t, json.Number("1.5"), f)

	b, _ := obj.Get("b")
	assert.Equal(t, false, b)

	n, _ := obj.Get("n")
	assert.Nil(t, n)

	a, _ := obj.Get("a")
	arr, ok := a.([]any)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, json.Number("1"), arr[0])
	assert.Equal(t, "two", arr[1])
	elem, ok := arr[2].(*Object)
	require.True(t, ok)
	v, _ := elem.Get("k")
	assert.Equal(t, "v", v)
}

func TestDecode_DeepNesting(t *testing.T) {
	const depth = 1000

	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString(`{"child":`)
	}
	sb.WriteString(`"bottom"`)
	for i := 0; i < depth; i++ {
		sb.WriteString(`}`)
	}

	obj, err := DecodeObject(strings.NewReader(sb.String()))
	require.NoError(t, err)

	current := any(obj)
	for i := 0; i < depth; i++ {
		next, err := Dig(current, "child")
		require.NoError(t, err)
		current = next
	}
	assert.Equal(t, "bottom", current)
}

func TestDecode_TopLevelScalarAndArray(t *testing.T) {
	value, err := Decode(strings.NewReader(`"plain"`))
	require.NoError(t, err)
	assert.Equal(t, "plain", value)

	value, err = Decode(strings.NewReader(`[1, 2]`))
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("1"), json.Number("2")}, value)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "truncated object", input: `{"a": 1`},
		{name: "invalid syntax", input: `{"a": }`},
		{name: "trailing data", input: `{"a": 1} {"b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyInputIsUnexpectedEOF(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeObject_RejectsNonObject(t *testing.T) {
	_, err := DecodeObject(strings.NewReader(`[1, 2, 3]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an object")
}

func TestDecode_RoundTripKeepsOrder(t *testing.T) {
	input := `{"z":1,"response":{"docs":[{"headline":{"main":"A"}}],"meta":{"hits":25}},"a":"last"}`

	obj, err := DecodeObject(strings.NewReader(input))
	require.NoError(t, err)

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, input, string(data))
}
