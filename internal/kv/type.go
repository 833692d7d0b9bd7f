package kv

// FieldType indicates type info about the KeyValue. This enum might be extended in future releases.
// Do not rely on the exact list of types.
type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType

	// StringsType is for []string
	StringsType

	ErrorType

	// AnyType should be used only if none of the other types fit.
	AnyType

	StringerType

	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() string {
	if ft < 0 || ft >= endType {
		return "unknown"
	}

	return fieldTypeNames[ft]
}
