package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func testCatalog() *Catalog {
	return NewCatalog([]CatalogEntry{
		{ID: 5, Key: "private-60", Name: "Private Lesson", Price: decPtr("45")},
		{ID: 7, Key: "quick-journey", Name: "Quick Journey", Price: decPtr("30")},
		{ID: 9, Key: "broken", Name: "Broken Price", Price: nil},
	})
}

func TestResolvePrice(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		in   PriceInput
		want string
	}{
		{
			name: "lesson type id found in catalog",
			in:   PriceInput{LessonTypeID: intPtr(5)},
			want: "45",
		},
		{
			name: "lesson type id wins over embedded object and amount",
			in: PriceInput{
				LessonTypeID: intPtr(5),
				LessonType:   ParseLessonTypeField([]byte(`{"name":"Old","price":99}`)),
				Amount:       strPtr("120.00"),
			},
			want: "45",
		},
		{
			name: "unknown lesson type id falls through to amount",
			in:   PriceInput{LessonTypeID: intPtr(404), Amount: strPtr("60.00")},
			want: "60",
		},
		{
			name: "catalog entry without usable price falls through",
			in: PriceInput{
				LessonTypeID: intPtr(9),
				LessonType:   ParseLessonTypeField([]byte(`{"price":"25"}`)),
			},
			want: "25",
		},
		{
			name: "embedded numeric price",
			in:   PriceInput{LessonType: ParseLessonTypeField([]byte(`{"name":"Group","price":35.5}`))},
			want: "35.5",
		},
		{
			name: "embedded string price",
			in:   PriceInput{LessonType: ParseLessonTypeField([]byte(`{"price":"40.00"}`))},
			want: "40",
		},
		{
			name: "embedded unparsable price uses total_price",
			in:   PriceInput{LessonType: ParseLessonTypeField([]byte(`{"price":"n/a","total_price":55}`))},
			want: "55",
		},
		{
			name: "embedded string total_price",
			in:   PriceInput{LessonType: ParseLessonTypeField([]byte(`{"total_price":"70"}`))},
			want: "70",
		},
		{
			name: "embedded without prices falls back to amount",
			in: PriceInput{
				LessonType: ParseLessonTypeField([]byte(`{"name":"Mystery"}`)),
				Amount:     strPtr("15"),
			},
			want: "15",
		},
		{
			name: "named lesson type resolved through catalog",
			in:   PriceInput{LessonType: NamedLessonType("Quick Journey")},
			want: "30",
		},
		{
			name: "named lesson type matches key case-insensitively",
			in:   PriceInput{LessonType: NamedLessonType("  PRIVATE-60 ")},
			want: "45",
		},
		{
			name: "named lesson type missing from catalog uses amount",
			in:   PriceInput{LessonType: NamedLessonType("Unknown"), Amount: strPtr("$12.50")},
			want: "12.5",
		},
		{
			name: "legacy amount only",
			in:   PriceInput{Amount: strPtr("60.00")},
			want: "60",
		},
		{
			name: "invalid amount",
			in:   PriceInput{Amount: strPtr("sixty")},
			want: "0",
		},
		{
			name: "negative amount is unresolvable",
			in:   PriceInput{Amount: strPtr("-10")},
			want: "0",
		},
		{
			name: "nothing to resolve",
			in:   PriceInput{},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(tt.in, catalog)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolvePrice_NilCatalog(t *testing.T) {
	got := ResolvePrice(PriceInput{LessonTypeID: intPtr(5), LessonType: NamedLessonType("Quick Journey")}, nil)
	assert.True(t, got.IsZero())

	got = ResolvePrice(PriceInput{LessonTypeID: intPtr(5), Amount: strPtr("20")}, nil)
	assert.Equal(t, "20", got.String())
}

func TestResolvePrice_CatalogFromJSONWithStringPrice(t *testing.T) {
	var entries []CatalogEntry
	err := jsonUnmarshal(`[{"id":3,"name":"Quick Journey","price":"30"},{"id":4,"name":"Clinic","price":true}]`, &entries)
	assert.NoError(t, err)

	catalog := NewCatalog(entries)
	assert.Equal(t, "30", ResolvePrice(PriceInput{LessonType: NamedLessonType("Quick Journey")}, catalog).String())
	assert.Equal(t, "0", ResolvePrice(PriceInput{LessonTypeID: intPtr(4)}, catalog).String())
}

func TestResolvePrice_Idempotent(t *testing.T) {
	catalog := testCatalog()
	in := PriceInput{LessonType: ParseLessonTypeField([]byte(`{"price":"18.75"}`))}

	first := ResolvePrice(in, catalog)
	second := ResolvePrice(in, catalog)
	assert.True(t, first.Equal(second))
}
