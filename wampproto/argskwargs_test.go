package wampproto

import (
	"reflect"
	"testing"
)

var argsKwargsTestSpec = validationSpec{minLength: 1, maxLength: 3, name: "TEST"}

func TestParseArgsKwargsTailAbsent(t *testing.T) {
	t.Parallel()

	data := []Value{IntValue(1)}
	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 1, argsKwargsTestSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasArgs || hasKwargs {
		t.Fatalf("hasArgs=%v hasKwargs=%v, want both false", hasArgs, hasKwargs)
	}
	if args != nil || kwargs != nil {
		t.Fatalf("args=%v kwargs=%v, want both nil", args, kwargs)
	}
}

func TestParseArgsKwargsTailArgsOnly(t *testing.T) {
	t.Parallel()

	data := []Value{IntValue(1), ListValue([]Value{StringValue("a")})}
	args, hasArgs, _, hasKwargs, err := parseArgsKwargsTail(data, 1, argsKwargsTestSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasArgs || hasKwargs {
		t.Fatalf("hasArgs=%v hasKwargs=%v, want true/false", hasArgs, hasKwargs)
	}
	if len(args) != 1 || args[0].String() != "a" {
		t.Fatalf("args = %v", args)
	}
}

func TestParseArgsKwargsTailArgsAndKwargs(t *testing.T) {
	t.Parallel()

	data := []Value{
		IntValue(1),
		ListValue([]Value{IntValue(9)}),
		DictValue(map[string]Value{"k": StringValue("v")}),
	}
	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 1, argsKwargsTestSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasArgs || !hasKwargs {
		t.Fatalf("hasArgs=%v hasKwargs=%v, want both true", hasArgs, hasKwargs)
	}
	if len(args) != 1 {
		t.Fatalf("args = %v", args)
	}
	if kwargs["k"].String() != "v" {
		t.Fatalf("kwargs = %v", kwargs)
	}
}

// TestParseArgsKwargsTailKwargsOnlyNullPlaceholder verifies the invariant
// that kwargs-without-args is only representable by filling the args slot
// with Null rather than omitting it.
func TestParseArgsKwargsTailKwargsOnlyNullPlaceholder(t *testing.T) {
	t.Parallel()

	data := []Value{
		IntValue(1),
		NullValue(),
		DictValue(map[string]Value{"k": StringValue("v")}),
	}
	args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(data, 1, argsKwargsTestSpec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasArgs {
		t.Fatal("hasArgs should be false when the args slot is a Null placeholder")
	}
	if !hasKwargs || kwargs["k"].String() != "v" {
		t.Fatalf("kwargs = %v, hasKwargs = %v", kwargs, hasKwargs)
	}
	if args != nil {
		t.Fatalf("args = %v, want nil", args)
	}
}

func TestParseArgsKwargsTailTooManyElements(t *testing.T) {
	t.Parallel()

	data := []Value{IntValue(1), NullValue(), DictValue(nil), StringValue("extra")}
	if _, _, _, _, err := parseArgsKwargsTail(data, 1, argsKwargsTestSpec); err == nil {
		t.Fatal("expected an error for a tail longer than 2 elements")
	}
}

// TestMarshalArgsKwargsRoundTrip checks that marshaling then re-parsing the
// tail reproduces the same hasArgs/hasKwargs flags and payloads.
func TestMarshalArgsKwargsRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []Value
		hasArgs   bool
		kwargs    map[string]Value
		hasKwargs bool
	}{
		{"neither", nil, false, nil, false},
		{"args only", []Value{IntValue(1)}, true, nil, false},
		{"kwargs only", nil, false, map[string]Value{"a": IntValue(1)}, true},
		{"both", []Value{IntValue(1)}, true, map[string]Value{"a": IntValue(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head := []Value{IntValue(1)}
			marshaled := marshalArgsKwargs(head, tt.args, tt.hasArgs, tt.kwargs, tt.hasKwargs)

			args, hasArgs, kwargs, hasKwargs, err := parseArgsKwargsTail(marshaled, 1, argsKwargsTestSpec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hasArgs != tt.hasArgs || hasKwargs != tt.hasKwargs {
				t.Fatalf("hasArgs=%v hasKwargs=%v, want %v/%v", hasArgs, hasKwargs, tt.hasArgs, tt.hasKwargs)
			}
			if tt.hasArgs && !reflect.DeepEqual(args, tt.args) {
				t.Fatalf("args = %v, want %v", args, tt.args)
			}
			if tt.hasKwargs && !reflect.DeepEqual(kwargs, tt.kwargs) {
				t.Fatalf("kwargs = %v, want %v", kwargs, tt.kwargs)
			}
		})
	}
}
