package models

import (
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Number is a float64 that also decodes from int32, int64, decimal128 and
// numeric strings. Older listings stored prices as text.
type Number float64

func (n *Number) UnmarshalBSONValue(typ byte, data []byte) error {
	*n = Number(numericValue(bson.RawValue{Type: bson.Type(typ), Value: data}))
	return nil
}

// Count is an int64 decoded with the same leniency as Number. Fractions are
// truncated toward zero.
type Count int64

func (c *Count) UnmarshalBSONValue(typ byte, data []byte) error {
	*c = Count(math.Trunc(numericValue(bson.RawValue{Type: bson.Type(typ), Value: data})))
	return nil
}

// numericValue returns 0 for null, non-numeric text and NaN or infinite values.
func numericValue(rv bson.RawValue) float64 {
	var f float64
	switch rv.Type {
	case bson.TypeDouble:
		f, _ = rv.DoubleOK()
	case bson.TypeInt32:
		i, _ := rv.Int32OK()
		f = float64(i)
	case bson.TypeInt64:
		i, _ := rv.Int64OK()
		f = float64(i)
	case bson.TypeDecimal128:
		if d, ok := rv.Decimal128OK(); ok {
			f, _ = strconv.ParseFloat(d.String(), 64)
		}
	case bson.TypeString:
		if s, ok := rv.StringValueOK(); ok {
			f, _ = strconv.ParseFloat(strings.TrimSpace(s), 64)
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
