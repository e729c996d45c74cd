package booking

import (
	"strconv"
	"strings"
)

type Field string

const (
	FieldDate   Field = "date"
	FieldTime   Field = "time"
	FieldPeople Field = "people"
	FieldLanes  Field = "lanes"
)

type FormFields struct {
	Date    string
	Time    string
	Players int
	Lanes   int
}

// Form captures the booking details typed by the user and reports every
// change to onChange.
type Form struct {
	fields   FormFields
	onChange func(FormFields)
}

func NewForm(onChange func(FormFields)) *Form {
	return &Form{onChange: onChange}
}

// Set stores raw as the value of field. Numeric fields treat blank or
// non-numeric input as 0, the same as an empty number input.
func (f *Form) Set(field Field, raw string) error {
	switch field {
	case FieldDate:
		f.fields.Date = raw
	case FieldTime:
		f.fields.Time = raw
	case FieldPeople:
		f.fields.Players = parseNumber(raw)
	case FieldLanes:
		f.fields.Lanes = parseNumber(raw)
	default:
		return ErrUnknownField
	}

	if f.onChange != nil {
		f.onChange(f.fields)
	}
	return nil
}

func (f *Form) Fields() FormFields {
	return f.fields
}

func parseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func IsField(name string) bool {
	switch Field(name) {
	case FieldDate, FieldTime, FieldPeople, FieldLanes:
		return true
	}
	return false
}
