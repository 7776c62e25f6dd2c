package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMode = NewEnum("Mode", "Fast", "Slow")

func TestParamType_Parse(t *testing.T) {
	tests := []struct {
		name    string
		typ     ParamType
		token   string
		want    any
		wantErr bool
	}{
		{name: "string", typ: String, token: "hello", want: "hello"},
		{name: "int", typ: Int, token: "42", want: 42},
		{name: "negative int", typ: Int, token: "-7", want: -7},
		{name: "int rejects text", typ: Int, token: "abc", wantErr: true},
		{name: "int rejects float", typ: Int, token: "1.5", wantErr: true},
		{name: "float", typ: Float, token: "2.5", want: 2.5},
		{name: "float rejects text", typ: Float, token: "x", wantErr: true},
		{name: "bool true", typ: Bool, token: "true", want: true},
		{name: "bool false", typ: Bool, token: "false", want: false},
		{name: "bool rejects text", typ: Bool, token: "maybe", wantErr: true},
		{name: "enum exact", typ: EnumOf(testMode), token: "Fast", want: EnumValue{Enum: "Mode", Name: "Fast", Ordinal: 0}},
		{name: "enum lower case", typ: EnumOf(testMode), token: "slow", want: EnumValue{Enum: "Mode", Name: "Slow", Ordinal: 1}},
		{name: "enum upper case", typ: EnumOf(testMode), token: "FAST", want: EnumValue{Enum: "Mode", Name: "Fast", Ordinal: 0}},
		{name: "enum unknown member", typ: EnumOf(testMode), token: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Parse(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamType_FormatRoundTrip(t *testing.T) {
	tests := []struct {
		typ   ParamType
		value any
	}{
		{String, "text"},
		{Int, 0},
		{Int, -12345},
		{Float, 0.1},
		{Float, 1e-9},
		{Float, 3.0},
		{Bool, true},
		{Bool, false},
		{EnumOf(testMode), EnumValue{Enum: "Mode", Name: "Slow", Ordinal: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.Name(), func(t *testing.T) {
			got, err := tt.typ.Parse(tt.typ.Format(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestCoerce(t *testing.T) {
	t.Run("converts every position", func(t *testing.T) {
		values, err := Coerce([]string{"3", "fast", "x"}, []ParamType{Int, EnumOf(testMode), String})
		require.NoError(t, err)
		assert.Equal(t, []any{3, EnumValue{Enum: "Mode", Name: "Fast"}, "x"}, values)
	})

	t.Run("no parameters", func(t *testing.T) {
		values, err := Coerce(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("arity mismatch", func(t *testing.T) {
		_, err := Coerce([]string{"1"}, []ParamType{Int, Int})
		assert.True(t, errors.Is(err, ErrArity))
		assert.False(t, IsParseError(err))
	})

	t.Run("reports failing position", func(t *testing.T) {
		_, err := Coerce([]string{"1", "two"}, []ParamType{Int, Int})
		require.Error(t, err)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 1, pe.Position)
		assert.Equal(t, "two", pe.Token)
		assert.Equal(t, "int", pe.Type)
		assert.Contains(t, err.Error(), "argument 2")
	})
}

func TestParseParamType(t *testing.T) {
	enums := map[string]*Enum{"Mode": testMode}

	tests := []struct {
		name    string
		want    ParamType
		wantErr bool
	}{
		{name: "string", want: String},
		{name: "str", want: String},
		{name: "Integer", want: Int},
		{name: "number", want: Float},
		{name: "boolean", want: Bool},
		{name: "Mode", want: EnumOf(testMode)},
		{name: "Color", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParamType(tt.name, enums)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParamType_Equal(t *testing.T) {
	assert.True(t, Int.Equal(Int))
	assert.False(t, Int.Equal(Float))
	assert.True(t, EnumOf(testMode).Equal(EnumOf(NewEnum("Mode", "Fast", "Slow"))))
	assert.False(t, EnumOf(testMode).Equal(EnumOf(NewEnum("Mode", "Slow", "Fast"))))
	assert.False(t, EnumOf(testMode).Equal(EnumOf(NewEnum("Speed", "Fast", "Slow"))))
}
