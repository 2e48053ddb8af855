package value

import (
	"strconv"
)

type ValueType uint

const (
	ValueIntType ValueType = iota
	ValueFloatType
	ValueStringType
	ValueBoolType
	ValueVoidType
	ValueNullType
	ValueSpriteType
	ValueVec2Type
	ValueTextType
)

var valueTypeNames = [...]string{
	ValueIntType:    "int",
	ValueFloatType:  "float",
	ValueStringType: "string",
	ValueBoolType:   "bool",
	ValueVoidType:   "void",
	ValueNullType:   "null",
	ValueSpriteType: "Sprite",
	ValueVec2Type:   "Vec2",
	ValueTextType:   "Text",
}

func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return "unknown"
}

// Value is the closed set of runtime values. Only types of this package
// implement it.
type Value interface {
	Type() ValueType
	String() string
	sealed()
}

type (
	ValueInt    int
	ValueFloat  float64
	ValueString string
	ValueBool   bool
	ValueVoid   struct{}
	ValueNull   struct{}
)

var (
	NullValue = ValueNull{}
	VoidValue = ValueVoid{}
)

// Type implements Value.
func (v ValueInt) Type() ValueType { return ValueIntType }

// Type implements Value.
func (v ValueFloat) Type() ValueType { return ValueFloatType }

// Type implements Value.
func (v ValueString) Type() ValueType { return ValueStringType }

// Type implements Value.
func (v ValueBool) Type() ValueType { return ValueBoolType }

// Type implements Value.
func (v ValueVoid) Type() ValueType { return ValueVoidType }

// Type implements Value.
func (v ValueNull) Type() ValueType { return ValueNullType }

func (v ValueInt) String() string    { return strconv.Itoa(int(v)) }
func (v ValueFloat) String() string  { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v ValueString) String() string { return string(v) }
func (v ValueBool) String() string   { return strconv.FormatBool(bool(v)) }
func (v ValueVoid) String() string   { return "void" }
func (v ValueNull) String() string   { return "null" }

func (ValueInt) sealed()    {}
func (ValueFloat) sealed()  {}
func (ValueString) sealed() {}
func (ValueBool) sealed()   {}
func (ValueVoid) sealed()   {}
func (ValueNull) sealed()   {}

// IsNothing reports whether v is one of the "no result" sentinels.
func IsNothing(v Value) bool {
	switch v.(type) {
	case nil, ValueNull, ValueVoid:
		return true
	}
	return false
}

var (
	_ Value = ValueInt(0)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
	_ Value = ValueBool(false)
	_ Value = VoidValue
	_ Value = NullValue
)
