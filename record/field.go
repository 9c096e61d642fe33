package record

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownField = errors.New("unknown field")

// Field selects one numeric attribute of a Record.
type Field int

const (
	FieldId Field = iota
	FieldAge
	FieldMath
	FieldChinese
	FieldEnglish
)

// Fields lists every numeric field in column order.
var Fields = []Field{FieldId, FieldAge, FieldMath, FieldChinese, FieldEnglish}

var fieldNames = map[Field]string{
	FieldId:      "id",
	FieldAge:     "age",
	FieldMath:    "math",
	FieldChinese: "chinese",
	FieldEnglish: "english",
}

var fieldAliases = map[string]Field{
	"id":      FieldId,
	"age":     FieldAge,
	"math":    FieldMath,
	"chinese": FieldChinese,
	"cn":      FieldChinese,
	"english": FieldEnglish,
	"en":      FieldEnglish,
}

func (f Field) String() string {
	name, ok := fieldNames[f]
	if !ok {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return name
}

// Value returns the field of r as a float64 so integer and score fields
// share the same comparisons. An undeclared field yields NaN, which no range
// contains.
func (f Field) Value(r Record) float64 {
	switch f {
	case FieldId:
		return float64(r.Id)
	case FieldAge:
		return float64(r.Age)
	case FieldMath:
		return r.Math
	case FieldChinese:
		return r.Chinese
	case FieldEnglish:
		return r.English
	}
	return math.NaN()
}

// ParseField resolves a case-insensitive field name.
func ParseField(name string) (Field, error) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w '%s', must be [%s]", ErrUnknownField, name, strings.Join(FieldNames(), "|"))
	}
	return f, nil
}

// FieldNames returns the canonical names of Fields.
func FieldNames() []string {
	names := make([]string, 0, len(Fields))
	for _, f := range Fields {
		names = append(names, f.String())
	}
	return names
}

func (f Field) MarshalText() ([]byte, error) {
	if _, ok := fieldNames[f]; !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownField, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
