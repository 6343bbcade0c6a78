package billing

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LessonTypeKind tags the shape a booking's lesson_type value was stored in.
type LessonTypeKind int

const (
	LessonTypeAbsent LessonTypeKind = iota
	LessonTypeNamed
	LessonTypeEmbedded
)

func (k LessonTypeKind) String() string {
	switch k {
	case LessonTypeNamed:
		return "named"
	case LessonTypeEmbedded:
		return "embedded"
	default:
		return "absent"
	}
}

// EmbeddedLessonType is the price snapshot older API versions stored on the booking itself.
// Price and TotalPrice are nil when the stored value was missing or not a decimal.
type EmbeddedLessonType struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"`
}

// LessonTypeField is the normalized form of the legacy lesson_type column, which may hold
// nothing, a catalog name/key string or an embedded object. The zero value is absent.
//
// Normalization happens once, when the value is decoded from JSON or scanned from the
// database; decoding never fails and unrecognized shapes become absent.
type LessonTypeField struct {
	kind     LessonTypeKind
	name     string
	embedded EmbeddedLessonType
	raw      json.RawMessage
}

// NamedLessonType references a catalog entry by name or key. Blank names are absent.
func NamedLessonType(name string) LessonTypeField {
	if strings.TrimSpace(name) == "" {
		return LessonTypeField{}
	}
	return LessonTypeField{kind: LessonTypeNamed, name: name}
}

// EmbeddedLessonTypeOf wraps an embedded price snapshot.
func EmbeddedLessonTypeOf(e EmbeddedLessonType) LessonTypeField {
	return LessonTypeField{kind: LessonTypeEmbedded, embedded: e}
}

// ParseLessonTypeField normalizes raw JSON into a LessonTypeField.
func ParseLessonTypeField(raw []byte) LessonTypeField {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return LessonTypeField{}
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return LessonTypeField{}
		}
		f := NamedLessonType(name)
		if f.kind == LessonTypeNamed {
			f.raw = append(json.RawMessage(nil), trimmed...)
		}
		return f
	case '{':
		var obj struct {
			Name        json.RawMessage `json:"name"`
			Description json.RawMessage `json:"description"`
			Price       json.RawMessage `json:"price"`
			TotalPrice  json.RawMessage `json:"total_price"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return LessonTypeField{}
		}

		e := EmbeddedLessonType{
			Name:        jsonText(obj.Name),
			Description: jsonText(obj.Description),
		}
		if d, ok := coerceJSONAmount(obj.Price); ok {
			e.Price = &d
		}
		if d, ok := coerceJSONAmount(obj.TotalPrice); ok {
			e.TotalPrice = &d
		}

		f := EmbeddedLessonTypeOf(e)
		f.raw = append(json.RawMessage(nil), trimmed...)
		return f
	default:
		return LessonTypeField{}
	}
}

func jsonText(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func (f LessonTypeField) Kind() LessonTypeKind {
	return f.kind
}

func (f LessonTypeField) IsAbsent() bool {
	return f.kind == LessonTypeAbsent
}

// Name returns the catalog reference of a named lesson type.
func (f LessonTypeField) Name() (string, bool) {
	if f.kind != LessonTypeNamed {
		return "", false
	}
	return f.name, true
}

// Embedded returns the embedded price snapshot.
func (f LessonTypeField) Embedded() (EmbeddedLessonType, bool) {
	if f.kind != LessonTypeEmbedded {
		return EmbeddedLessonType{}, false
	}
	return f.embedded, true
}

// DisplayName is what the console shows in the lesson column.
func (f LessonTypeField) DisplayName() string {
	switch f.kind {
	case LessonTypeNamed:
		return f.name
	case LessonTypeEmbedded:
		return f.embedded.Name
	default:
		return ""
	}
}

// MarshalJSON preserves the stored representation when there is one.
func (f LessonTypeField) MarshalJSON() ([]byte, error) {
	if len(f.raw) > 0 {
		return f.raw, nil
	}
	switch f.kind {
	case LessonTypeNamed:
		return json.Marshal(f.name)
	case LessonTypeEmbedded:
		return json.Marshal(f.embedded)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON never returns an error; unknown shapes decode as absent.
func (f *LessonTypeField) UnmarshalJSON(data []byte) error {
	*f = ParseLessonTypeField(data)
	return nil
}

// Value implements driver.Valuer for the jsonb column.
func (f LessonTypeField) Value() (driver.Value, error) {
	if f.kind == LessonTypeAbsent {
		return nil, nil
	}
	b, err := f.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the jsonb column.
func (f *LessonTypeField) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = LessonTypeField{}
	case []byte:
		*f = ParseLessonTypeField(v)
	case string:
		*f = ParseLessonTypeField([]byte(v))
	default:
		return fmt.Errorf("unsupported lesson_type value of type %T", value)
	}
	return nil
}

// GormDataType tells gorm how to migrate the column.
func (LessonTypeField) GormDataType() string {
	return "jsonb"
}
