/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"math"
	"strconv"
)

// The "type of internal value" for each built-in scalar:
//
// +--------------+---------------------------------+
// | Scalar Type  | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// +--------------+---------------------------------+

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger      = "not an integer"
	coercionErrorIntegerTooLarge = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric      = "not a numeric value"
	coercionErrorNonString       = "not a string value"
	coercionErrorNonBoolean      = "not a boolean value"
)

func newCoercionError(typeName string, value interface{}, reason string) error {
	return NewError(fmt.Sprintf(
		"%s cannot represent %s: %s", typeName, Inspect(value), reason))
}

func coerceInt(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case int:
		if value > math.MaxInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		if value < math.MinInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooSmall)
		}
		return value, nil

	case int8:
		return int(value), nil
	case int16:
		return int(value), nil
	case int32:
		return int(value), nil

	case int64:
		if value > math.MaxInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		if value < math.MinInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooSmall)
		}
		return int(value), nil

	case uint8:
		return int(value), nil
	case uint16:
		return int(value), nil

	case uint:
		if value > math.MaxInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(value), nil
	case uint32:
		if value > math.MaxInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(value), nil
	case uint64:
		if value > math.MaxInt32 {
			return nil, newCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(value), nil

	case float32:
		return coerceIntFromFloat("Int", float64(value))
	case float64:
		return coerceIntFromFloat("Int", value)

	default:
		return nil, newCoercionError("Int", value, coercionErrorNonInteger)
	}
}

func coerceIntFromFloat(typeName string, value float64) (interface{}, error) {
	if math.Trunc(value) != value || math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, newCoercionError(typeName, value, coercionErrorNonInteger)
	}
	if value > math.MaxInt32 {
		return nil, newCoercionError(typeName, value, coercionErrorIntegerTooLarge)
	}
	if value < math.MinInt32 {
		return nil, newCoercionError(typeName, value, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

func coerceFloat(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case float32:
		return float64(value), nil
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	default:
		return nil, newCoercionError("Float", value, coercionErrorNonNumeric)
	}
}

func coerceString(value interface{}) (interface{}, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return nil, newCoercionError("String", value, coercionErrorNonString)
}

// serializeString is more lenient than coerceString; a result value may be anything with an
// obvious string form.
func serializeString(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case bool:
		if value {
			return "true", nil
		}
		return "false", nil
	case fmt.Stringer:
		return value.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", value), nil
	default:
		return nil, newCoercionError("String", value, coercionErrorNonString)
	}
}

func coerceBoolean(value interface{}) (interface{}, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return nil, newCoercionError("Boolean", value, coercionErrorNonBoolean)
}

func coerceID(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case int:
		return strconv.Itoa(value), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	case fmt.Stringer:
		return value.String(), nil
	default:
		return nil, newCoercionError("ID", value, coercionErrorNonString)
	}
}

var intType = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	Serialize:    coerceInt,
	ParseValue:   coerceInt,
	ParseLiteral: coerceInt,
})

// Int returns the built-in Int scalar type.
func Int() *Scalar {
	return intType
}

var floatType = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values " +
		"as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	Serialize:    coerceFloat,
	ParseValue:   coerceFloat,
	ParseLiteral: coerceFloat,
})

// Float returns the built-in Float scalar type.
func Float() *Scalar {
	return floatType
}

var stringType = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used to represent free-form " +
		"human-readable text.",
	Serialize:    serializeString,
	ParseValue:   coerceString,
	ParseLiteral: coerceString,
})

// String returns the built-in String scalar type.
func String() *Scalar {
	return stringType
}

var booleanType = MustNewScalar(&ScalarConfig{
	Name:         "Boolean",
	Description:  "The `Boolean` scalar type represents `true` or `false`.",
	Serialize:    coerceBoolean,
	ParseValue:   coerceBoolean,
	ParseLiteral: coerceBoolean,
})

// Boolean returns the built-in Boolean scalar type.
func Boolean() *Scalar {
	return booleanType
}

var idType = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; " +
		"however, it is not intended to be human-readable.",
	Serialize:    coerceID,
	ParseValue:   coerceID,
	ParseLiteral: coerceID,
})

// ID returns the built-in ID scalar type.
func ID() *Scalar {
	return idType
}
