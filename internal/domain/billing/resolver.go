package billing

import "github.com/shopspring/decimal"

// PriceInput carries the price-bearing fields of a booking.
type PriceInput struct {
	LessonTypeID *int
	LessonType   LessonTypeField
	Amount       *string
}

// ResolvePrice determines a booking's lesson price. The first rule that yields a value wins:
//
//  1. catalog entry referenced by LessonTypeID
//  2. embedded lesson type: price, then total_price
//  3. catalog entry matched by the named lesson type
//  4. the legacy Amount string
//
// Anything unresolvable yields zero so list views always render.
func ResolvePrice(in PriceInput, catalog *Catalog) decimal.Decimal {
	if in.LessonTypeID != nil {
		if entry, ok := catalog.ByID(*in.LessonTypeID); ok {
			if price, ok := entryPrice(entry); ok {
				return price
			}
		}
	}

	switch in.LessonType.Kind() {
	case LessonTypeEmbedded:
		e, _ := in.LessonType.Embedded()
		if price, ok := embeddedPrice(e); ok {
			return price
		}
	case LessonTypeNamed:
		name, _ := in.LessonType.Name()
		if entry, ok := catalog.ByName(name); ok {
			if price, ok := entryPrice(entry); ok {
				return price
			}
		}
	}

	if in.Amount != nil {
		if amount, ok := nonNegative(ParseDecimal(*in.Amount)); ok {
			return amount
		}
	}

	return decimal.Zero
}

func entryPrice(e CatalogEntry) (decimal.Decimal, bool) {
	if e.Price == nil {
		return decimal.Zero, false
	}
	return nonNegative(*e.Price, true)
}

func embeddedPrice(e EmbeddedLessonType) (decimal.Decimal, bool) {
	if e.Price != nil {
		if price, ok := nonNegative(*e.Price, true); ok {
			return price, true
		}
	}
	if e.TotalPrice != nil {
		return nonNegative(*e.TotalPrice, true)
	}
	return decimal.Zero, false
}
