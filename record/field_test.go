package record

import (
	"errors"
	"math"
	"testing"

	"github.com/fulldump/biff"
)

func TestParseField(t *testing.T) {

	biff.Alternative("Parse field names", func(a *biff.A) {

		a.Alternative("Canonical names", func(a *biff.A) {
			for _, f := range Fields {
				parsed, err := ParseField(f.String())
				biff.AssertNil(err)
				biff.AssertEqual(parsed, f)
			}
		})

		a.Alternative("Aliases and case", func(a *biff.A) {
			f, err := ParseField(" MATH ")
			biff.AssertNil(err)
			biff.AssertEqual(f, FieldMath)

			f, err = ParseField("cn")
			biff.AssertNil(err)
			biff.AssertEqual(f, FieldChinese)

			f, err = ParseField("En")
			biff.AssertNil(err)
			biff.AssertEqual(f, FieldEnglish)
		})

		a.Alternative("Unknown", func(a *biff.A) {
			_, err := ParseField("name")
			biff.AssertTrue(errors.Is(err, ErrUnknownField))
		})
	})
}

func TestFieldValue(t *testing.T) {
	r := Record{Id: 7, Name: "Alice", Sex: "F", Age: 20, Math: 88.5, Chinese: 91, English: 76}

	biff.AssertEqual(FieldId.Value(r), 7.0)
	biff.AssertEqual(FieldAge.Value(r), 20.0)
	biff.AssertEqual(FieldMath.Value(r), 88.5)
	biff.AssertEqual(FieldChinese.Value(r), 91.0)
	biff.AssertEqual(FieldEnglish.Value(r), 76.0)

	biff.AssertTrue(math.IsNaN(Field(42).Value(r)))
}

func TestFieldText(t *testing.T) {
	text, err := FieldChinese.MarshalText()
	biff.AssertNil(err)
	biff.AssertEqual(string(text), "chinese")

	var f Field
	biff.AssertNil(f.UnmarshalText([]byte("english")))
	biff.AssertEqual(f, FieldEnglish)

	_, err = Field(42).MarshalText()
	biff.AssertNotNil(err)
}
