package classorder

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Text is a string that also decodes from JSON numbers, booleans and null (as "").
// School backends are loose about types: a class named 7 often arrives as a number.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var val interface{}
	if err := dec.Decode(&val); err != nil {
		return err
	}
	switch v := val.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(v)
	case json.Number:
		*t = Text(v.String())
	case bool:
		*t = Text(strconv.FormatBool(v))
	default:
		return errors.Errorf("cannot use %s as text", bytes.TrimSpace(data))
	}
	return nil
}

func (t Text) String() string { return string(t) }

// UnmarshalJSON accepts both snake_case and camelCase keys, and coerces scalar values to text.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		ClassName       *Text `json:"class_name"`
		ClassNameCamel  *Text `json:"className"`
		AcademicYear    *Text `json:"academic_year"`
		AcademicYearAlt *Text `json:"academicYear"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding class record")
	}
	r.ClassName = firstText(raw.ClassName, raw.ClassNameCamel)
	r.AcademicYear = firstText(raw.AcademicYear, raw.AcademicYearAlt)
	return nil
}

func firstText(vals ...*Text) string {
	for _, v := range vals {
		if v != nil {
			return string(*v)
		}
	}
	return ""
}
