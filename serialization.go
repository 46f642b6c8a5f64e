package bignum

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/bignum/int10"
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// BSON element kinds handled by SetBSON.
const (
	bsonString     = 0x02
	bsonDecimal128 = 0x13
)

// decimal128Digits is the coefficient size of an IEEE 754 decimal128.
const decimal128Digits = 34

// GetBSON encodes d as a Decimal128 when its digits fit one exactly, and as
// its full decimal text otherwise.
func (d Decimal) GetBSON() (interface{}, error) {
	s, digits := d.text(), d.orZero().digits
	if d.IsInt() {
		s, digits = strings.TrimSuffix(s, ".0"), digits[:len(digits)-1]
	}
	if int10.Int(digits).Len() <= decimal128Digits {
		if w, err := bson.ParseDecimal128(s); err == nil {
			return w, nil
		}
	}
	return s, nil
}

// SetBSON decodes a Decimal128 or string element into d.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var s string
	switch raw.Kind {
	case bsonDecimal128:
		var w bson.Decimal128
		if err := raw.Unmarshal(&w); err != nil {
			return err
		}
		s = expandExponent(w.String())
	case bsonString:
		if err := raw.Unmarshal(&s); err != nil {
			return err
		}
	default:
		return errors.Errorf("cannot decode BSON kind %#x into a Decimal", raw.Kind)
	}
	v, err := NewFromString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler. All stored digits are
// written, without display rounding.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.text()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(b []byte) error {
	v, err := NewFromString(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// expandExponent rewrites scientific notation such as "1.25E+3" as a plain
// decimal ("1250"). Other strings are returned unchanged.
func expandExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	digits, point, neg, err := parseDecimal(s[:i])
	if err != nil {
		return s
	}
	point += exp
	if point > len(digits) {
		digits += strings.Repeat("0", point-len(digits))
	}
	if point < 1 {
		digits = strings.Repeat("0", 1-point) + digits
		point = 1
	}
	out := digits[:point] + "." + digits[point:]
	if strings.HasSuffix(out, ".") {
		out += "0"
	}
	if neg {
		out = "-" + out
	}
	return out
}
