package kv

import (
	"fmt"
	"strconv"
	"time"
)

// KeyValue represents typed log field (a key-value pair)
type KeyValue struct {
	ftype FieldType
	key   string

	vInt int64
	vStr string
	vAny any
}

// Type returns type of the field
func (f KeyValue) Type() FieldType {
	return f.ftype
}

// Key returns the field key
func (f KeyValue) Key() string {
	return f.key
}

// StringValue is a value getter for fields with StringType type
func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vStr
}

// IntValue is a value getter for fields with IntType type
func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vInt)
}

// Int64Value is a value getter for fields with Int64Type type
func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vInt
}

// BoolValue is a value getter for fields with BoolType type
func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vInt != 0
}

// DurationValue is a value getter for fields with DurationType type
func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Nanosecond * time.Duration(f.vInt)
}

// StringsValue is a value getter for fields with StringsType type
func (f KeyValue) StringsValue() []string {
	f.checkType(StringsType)
	if f.vAny == nil {
		return nil
	}
	val, _ := f.vAny.([]string)

	return val
}

// ErrorValue is a value getter for fields with ErrorType type
func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vAny == nil {
		return nil
	}
	val, _ := f.vAny.(error)

	return val
}

// AnyValue is a value getter for fields with AnyType type
func (f KeyValue) AnyValue() any {
	switch f.ftype {
	case AnyType:
		return f.vAny
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case StringerType:
		return f.Stringer()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// Stringer is a value getter for fields with StringerType type
func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vAny == nil {
		return nil
	}
	val, _ := f.vAny.(fmt.Stringer)

	return val
}

// Panics on type mismatch
func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type. have: %s, want: %s", f.ftype, want))
	}
}

// Returns default string representation of the field value
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vInt, 10)
	case StringType:
		return f.vStr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vAny == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vAny == nil {
			return "<nil>"
		}

		return fmt.Sprintf("%v", f.vAny)
	case StringerType:
		if f.vAny == nil {
			return "<nil>"
		}

		return f.Stringer().String()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// String constructs field with a given key and value
func String(key, value string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   key,
		vStr:  value,
	}
}

// Int constructs field with a given key and value
func Int(key string, value int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   key,
		vInt:  int64(value),
	}
}

// Int64 constructs field with a given key and value
func Int64(key string, value int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   key,
		vInt:  value,
	}
}

// Bool constructs field with a given key and value
func Bool(key string, value bool) KeyValue {
	var byteVal int64
	if value {
		byteVal = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vInt:  byteVal,
	}
}

// Duration constructs field with a given key and value
func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vInt:  value.Nanoseconds(),
	}
}

// Strings constructs field with a given key and value
func Strings(key string, value []string) KeyValue {
	return KeyValue{
		ftype: StringsType,
		key:   key,
		vAny:  value,
	}
}

// NamedError constructs field with a given key and value
func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vAny:  value,
	}
}

// Error is the same as NamedError("error", value)
func Error(value error) KeyValue {
	return NamedError("error", value)
}

// Any constructs untyped field with a given key and value
func Any(key string, value any) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vAny:  value,
	}
}

// Stringer constructs field with a given key and value
func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{
		ftype: StringerType,
		key:   key,
		vAny:  value,
	}
}

// Latency creates field "latency" with time since start
func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}
