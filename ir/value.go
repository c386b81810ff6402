package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/goccy/go-yaml"
)

type Type int

const (
	NoType Type = iota
	StringType
	NumberType
	BoolType
	NullType
	CompositeType
)

func (t Type) String() string {
	return map[Type]string{
		NoType:        "NoType",
		StringType:    "StringType",
		NumberType:    "NumberType",
		BoolType:      "BoolType",
		NullType:      "NullType",
		CompositeType: "CompositeType",
	}[t]
}

func Types() []Type {
	return []Type{StringType, NumberType, BoolType, NullType, CompositeType}
}

// Value is the closed scalar union carried by nodes. CompositeType
// holds a decoded nested value (yaml.MapSlice or []any) and occurs
// only on mirror nodes and container nodes aligned against them.
type Value struct {
	Type      Type
	String    string
	Bool      bool
	Int64     *int64
	Float64   *float64
	Composite any
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromInt(v int64) Value {
	return Value{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) Value {
	return Value{Type: NumberType, Float64: &f}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func Null() Value {
	return Value{Type: NullType}
}

func FromComposite(v any) Value {
	return Value{Type: CompositeType, Composite: v}
}

// FromNative converts a value decoded by the external YAML parser
// (or handed to Set/Add by a caller) into the closed union.
func FromNative(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return FromString(x)
	case bool:
		return FromBool(x)
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint64:
		return FromInt(int64(x))
	case float64:
		return FromFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i)
		}
		if f, err := x.Float64(); err == nil {
			return FromFloat(f)
		}
		return FromString(x.String())
	case yaml.MapSlice, []any, map[string]any:
		return FromComposite(x)
	default:
		return FromComposite(v)
	}
}

// Native converts back to a plain Go value for callers of Get.
func (v Value) Native() any {
	switch v.Type {
	case StringType:
		return v.String
	case BoolType:
		return v.Bool
	case NullType, NoType:
		return nil
	case NumberType:
		if v.Int64 != nil {
			return *v.Int64
		}
		if v.Float64 != nil {
			return *v.Float64
		}
		return nil
	case CompositeType:
		return v.Composite
	default:
		return nil
	}
}

func (v Value) Clone() Value {
	res := v
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	return res
}

func (v Value) IsZero() bool {
	return v.Type == NoType
}

func (v Value) float() (float64, bool) {
	if v.Int64 != nil {
		return float64(*v.Int64), true
	}
	if v.Float64 != nil {
		return *v.Float64, true
	}
	return 0, false
}

// Equal compares two values semantically: integer and float numbers
// compare numerically, composites compare structurally.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case NoType, NullType:
		return true
	case StringType:
		return v.String == o.String
	case BoolType:
		return v.Bool == o.Bool
	case NumberType:
		if v.Int64 != nil && o.Int64 != nil {
			return *v.Int64 == *o.Int64
		}
		a, aok := v.float()
		b, bok := o.float()
		return aok && bok && a == b
	case CompositeType:
		return reflect.DeepEqual(v.Composite, o.Composite)
	default:
		return false
	}
}

func (v Value) GoString() string {
	switch v.Type {
	case NumberType:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		if v.Float64 != nil {
			return strconv.FormatFloat(*v.Float64, 'f', -1, 64)
		}
		return "NaN"
	case CompositeType:
		return fmt.Sprintf("composite(%v)", v.Composite)
	case StringType:
		return strconv.Quote(v.String)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case NullType:
		return "null"
	default:
		return "<none>"
	}
}
