package billing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonUnmarshal(s string, v interface{}) error {
	return json.Unmarshal([]byte(s), v)
}

func TestParseLessonTypeField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind LessonTypeKind
	}{
		{"empty", ``, LessonTypeAbsent},
		{"null", `null`, LessonTypeAbsent},
		{"blank string", `"   "`, LessonTypeAbsent},
		{"named", `"Quick Journey"`, LessonTypeNamed},
		{"object", `{"name":"Group","price":"20"}`, LessonTypeEmbedded},
		{"number", `42`, LessonTypeAbsent},
		{"array", `["a"]`, LessonTypeAbsent},
		{"malformed", `{"name":`, LessonTypeAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, ParseLessonTypeField([]byte(tt.raw)).Kind())
		})
	}
}

func TestLessonTypeField_EmbeddedPrices(t *testing.T) {
	f := ParseLessonTypeField([]byte(`{"name":"Group","description":"x","price":true,"total_price":"1,200.00"}`))

	e, ok := f.Embedded()
	require.True(t, ok)
	assert.Equal(t, "Group", e.Name)
	assert.Equal(t, "Group", f.DisplayName())
	assert.Nil(t, e.Price)
	require.NotNil(t, e.TotalPrice)
	assert.Equal(t, "1200", e.TotalPrice.String())
}

func TestLessonTypeField_JSONRoundTripKeepsStoredShape(t *testing.T) {
	var payload struct {
		LessonType LessonTypeField `json:"lessonType"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lessonType":{"name":"Group","price":"20"}}`), &payload))

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lessonType":{"name":"Group","price":"20"}}`, string(out))
}

func TestLessonTypeField_ValueAndScan(t *testing.T) {
	v, err := LessonTypeField{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NamedLessonType("Clinic").Value()
	require.NoError(t, err)
	assert.Equal(t, `"Clinic"`, v)

	var f LessonTypeField
	require.NoError(t, f.Scan([]byte(`"Clinic"`)))
	name, ok := f.Name()
	assert.True(t, ok)
	assert.Equal(t, "Clinic", name)

	require.NoError(t, f.Scan(nil))
	assert.True(t, f.IsAbsent())

	assert.Error(t, f.Scan(12))
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"60.00", "60", true},
		{" 45 ", "45", true},
		{"$1,250.50", "1250.5", true},
		{"", "0", false},
		{"abc", "0", false},
		{"12abc", "0", false},
	}

	for _, tt := range tests {
		got, ok := ParseDecimal(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got.String(), tt.raw)
	}

	assert.Equal(t, "$0.00", FormatUSD(ParseDecimalOrZero(nil)))
	assert.Equal(t, "$12.50", FormatUSD(ParseDecimalOrZero(strPtr("12.5"))))
}
