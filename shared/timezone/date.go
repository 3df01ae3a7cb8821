package timezone

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"todoapi/shared/constant"
)

var nullJSON = []byte("null")

// Date is a calendar day without time of day or zone. The zero value means "no date"
// and is written as JSON null and SQL NULL.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day t falls on in its own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()

	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return nullJSON, nil
	}

	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullJSON) {
		*d = Date{}

		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string in %s format: %w", constant.DateFormat, err)
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}

		return nil
	case time.Time:
		*d = DateOf(value)

		return nil
	case string:
		return d.scanString(value)
	case []byte:
		return d.scanString(string(value))
	default:
		return fmt.Errorf("cannot scan %T into timezone.Date", src)
	}
}

func (d *Date) scanString(value string) error {
	if len(value) > len(constant.DateFormat) {
		value = value[:len(constant.DateFormat)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil //nolint:nilnil
	}

	return d.String(), nil
}
