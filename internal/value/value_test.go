package value

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(t *testing.T, s string) Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return Decimal{D: d}
}

func TestMarshalCanonicalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
		{"int", Int(42), "42"},
		{"negative int", Int(-100), "-100"},
		{"float", Float(4.1), "4.1"},
		{"integral float", Float(2), "2"},
		{"decimal keeps scale", dec(t, "18.00"), `"18.00"`},
		{"nil decimal", Decimal{}, "null"},
		{"bool", Bool(true), "true"},
		{"null", Null{}, "null"},
		{"empty array", Array{}, "[]"},
		{"empty object", Object{}, "{}"},
		{"ints", Ints(1, 2, 3), "[1,2,3]"},
		{"no html escaping", String("<a&b>"), `"<a&b>"`},
		{"nested", NewObject(F("z", Array{Bool(false)}), F("a", Null{})), `{"a":null,"z":[false]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	got, err := MarshalCanonical(String("cafe\u0301"))
	require.NoError(t, err)
	assert.Equal(t, "\"caf\u00e9\"", string(got))
}

func TestMarshalCanonicalLineSeparators(t *testing.T) {
	got, err := MarshalCanonical(String("a\u2028b\\u2029"))
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\\\\u2029\"", string(got), "only the real separator is written literally")
}

func TestMarshalCanonicalUTF16KeyOrder(t *testing.T) {
	// U+10000 is a surrogate pair starting 0xD800, which sorts before
	// U+E000 in UTF-16 even though its UTF-8 form sorts after.
	obj := Object{
		"\uE000":     Int(1),
		"\U00010000": Int(2),
	}
	got, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\uE000\":1}", string(got))
}

func TestMarshalCanonicalRejectsNaN(t *testing.T) {
	_, err := MarshalCanonical(Array{Float(math.NaN())})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array[0]")
}

func TestEqual(t *testing.T) {
	ok, err := Equal(dec(t, "21.00"), String("21.00"))
	require.NoError(t, err)
	assert.True(t, ok, "decimals compare by their text")

	ok, err = Equal(dec(t, "21.0"), dec(t, "21.00"))
	require.NoError(t, err)
	assert.False(t, ok, "scale is significant")

	ok, err = Equal(Float(7), Int(7))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFromAny_YAML(t *testing.T) {
	src := `
- category: Beverages
  count: 5
  price: "18.00"
  ratio: 4.1
  missing: null
  tags: [a, b]
- true
`
	var doc any
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	v, err := FromAny(doc)
	require.NoError(t, err)

	want := Array{
		NewObject(
			F("category", String("Beverages")),
			F("count", Int(5)),
			F("price", String("18.00")),
			F("ratio", Float(4.1)),
			F("missing", Null{}),
			F("tags", Strings("a", "b")),
		),
		Bool(true),
	}
	assert.Equal(t, want, v)
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(map[any]any{1: "x"})
	require.Error(t, err)

	_, err = FromAny([]any{struct{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[0]")
}

func TestText(t *testing.T) {
	rows := Array{
		NewObject(F("category", String("Beverages")), F("product", String("Chai"))),
		NewObject(F("category", String("Vegetables")), F("products", Strings())),
	}
	assert.Equal(t, "category: Beverages, product: Chai\ncategory: Vegetables, products: []\n", Text(rows))

	assert.Equal(t, "true\n", Text(Bool(true)))
	assert.Equal(t, "null\n", Text(Null{}))
	assert.Equal(t, "", Text(Array{}))
	assert.Equal(t, "[1, 2]\n", Text(Array{Ints(1, 2)}))
	assert.Equal(t, "id: 1, price: 9.20, tags: [{k: v}]\n",
		Text(NewObject(F("id", Int(1)), F("price", dec(t, "9.20")), F("tags", Array{NewObject(F("k", String("v")))}))))
}
