package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the semantic type of a command parameter.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
)

// String returns the name used in help output and manifests.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Enum is a named set of members matched case-insensitively during coercion.
type Enum struct {
	Name    string
	Members []string
}

// NewEnum creates an enumeration type.
func NewEnum(name string, members ...string) *Enum {
	return &Enum{Name: name, Members: members}
}

// Lookup returns the member matching token, ignoring case.
func (e *Enum) Lookup(token string) (EnumValue, bool) {
	for i, m := range e.Members {
		if strings.EqualFold(m, token) {
			return EnumValue{Enum: e.Name, Name: m, Ordinal: i}, true
		}
	}
	return EnumValue{}, false
}

// Equal reports whether both enums declare the same name and members.
func (e *Enum) Equal(other *Enum) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.Name != other.Name || len(e.Members) != len(other.Members) {
		return false
	}
	for i := range e.Members {
		if e.Members[i] != other.Members[i] {
			return false
		}
	}
	return true
}

// EnumValue is the coerced value of an enum parameter.
type EnumValue struct {
	Enum    string
	Name    string
	Ordinal int
}

func (v EnumValue) String() string {
	return v.Name
}

// ParamType describes one positional parameter.
type ParamType struct {
	Kind Kind
	Enum *Enum
}

// Primitive parameter types.
var (
	String = ParamType{Kind: KindString}
	Int    = ParamType{Kind: KindInt}
	Float  = ParamType{Kind: KindFloat}
	Bool   = ParamType{Kind: KindBool}
)

// EnumOf returns the parameter type for e.
func EnumOf(e *Enum) ParamType {
	return ParamType{Kind: KindEnum, Enum: e}
}

// Name returns the type name shown in help strings. Enums show their own name.
func (p ParamType) Name() string {
	if p.Kind == KindEnum && p.Enum != nil {
		return p.Enum.Name
	}
	return p.Kind.String()
}

// Equal compares kinds and, for enums, the enum declarations.
func (p ParamType) Equal(other ParamType) bool {
	if p.Kind != other.Kind {
		return false
	}
	if p.Kind == KindEnum {
		return p.Enum.Equal(other.Enum)
	}
	return true
}

// Parse converts a single token into a value of this type.
func (p ParamType) Parse(token string) (any, error) {
	switch p.Kind {
	case KindString:
		return token, nil
	case KindInt:
		n, err := strconv.ParseInt(token, 10, 0)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	case KindFloat:
		return strconv.ParseFloat(token, 64)
	case KindBool:
		return strconv.ParseBool(token)
	case KindEnum:
		if p.Enum == nil {
			return nil, fmt.Errorf("enum parameter has no declaration")
		}
		v, ok := p.Enum.Lookup(token)
		if !ok {
			return nil, fmt.Errorf("%q is not a member of %s (%s)", token, p.Enum.Name, strings.Join(p.Enum.Members, ", "))
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported parameter kind %d", p.Kind)
	}
}

// Format renders v so that Parse yields v again.
func (p ParamType) Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case EnumValue:
		return x.Name
	default:
		return fmt.Sprint(v)
	}
}

// ParseParamType resolves a type name as written in manifests. Enum names are
// looked up in enums.
func ParseParamType(name string, enums map[string]*Enum) (ParamType, error) {
	switch strings.ToLower(name) {
	case "string", "str":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "float", "number", "double":
		return Float, nil
	case "bool", "boolean":
		return Bool, nil
	}
	if e, ok := enums[name]; ok {
		return EnumOf(e), nil
	}
	return ParamType{}, fmt.Errorf("unknown parameter type %q", name)
}

// Coerce converts tokens into typed values matching types. The caller decides
// applicability; a length mismatch returns ErrArity.
func Coerce(tokens []string, types []ParamType) ([]any, error) {
	if len(tokens) != len(types) {
		return nil, fmt.Errorf("%w: got %d tokens for %d parameters", ErrArity, len(tokens), len(types))
	}

	values := make([]any, len(tokens))
	for i, token := range tokens {
		v, err := types[i].Parse(token)
		if err != nil {
			return nil, &ParseError{Position: i, Token: token, Type: types[i].Name(), Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// paramsEqual compares two signatures positionally.
func paramsEqual(a, b []ParamType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
