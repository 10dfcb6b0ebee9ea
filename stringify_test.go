package jsrs

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestStringify(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc  string
		value *Value
		want  string
	}{{
		desc:  "Undefined",
		value: NewUndefined(),
		want:  `undefined`,
	}, {
		desc:  "Null",
		value: NewNull(),
		want:  `null`,
	}, {
		desc:  "True",
		value: NewBool(true),
		want:  `true`,
	}, {
		desc:  "False",
		value: NewBool(false),
		want:  `false`,
	}, {
		desc:  "Int",
		value: NewInt(42),
		want:  `42`,
	}, {
		desc:  "IntNegative",
		value: NewInt(-5),
		want:  `-5`,
	}, {
		desc:  "NumberFraction",
		value: NewNumber(0.5),
		want:  `0.5`,
	}, {
		desc:  "NumberIntegral",
		value: NewNumber(1000),
		want:  `1000`,
	}, {
		desc:  "NumberNegativeZero",
		value: NewNumber(math.Copysign(0, -1)),
		want:  `0`,
	}, {
		desc:  "NumberLargeIntegral",
		value: NewNumber(1e20),
		want:  `100000000000000000000`,
	}, {
		desc:  "NumberExponent",
		value: NewNumber(1e21),
		want:  `1e+21`,
	}, {
		desc:  "NumberSmallExponent",
		value: NewNumber(1e-7),
		want:  `1e-07`,
	}, {
		desc:  "NumberNaN",
		value: NewNumber(math.NaN()),
		want:  `NaN`,
	}, {
		desc:  "NumberInfinity",
		value: NewNumber(math.Inf(1)),
		want:  `Infinity`,
	}, {
		desc:  "NumberNegativeInfinity",
		value: NewNumber(math.Inf(-1)),
		want:  `-Infinity`,
	}, {
		desc:  "String",
		value: NewString("abc"),
		want:  `'abc'`,
	}, {
		desc:  "StringEmpty",
		value: NewString(""),
		want:  `''`,
	}, {
		desc:  "StringQuote",
		value: NewString("it's"),
		want:  `'it\'s'`,
	}, {
		desc:  "StringBackslash",
		value: NewString(`a\b`),
		want:  `'a\\b'`,
	}, {
		desc:  "StringControls",
		value: NewString("\b\f\n\r\t\v"),
		want:  `'\b\f\n\r\t\v'`,
	}, {
		desc:  "StringOtherControl",
		value: NewString("\x01\x1f"),
		want:  `'\u0001\u001f'`,
	}, {
		desc:  "StringDelete",
		value: NewString("\x7f"),
		want:  `'\u007f'`,
	}, {
		desc:  "StringMultibytePassthrough",
		value: NewString("héllo 😀"),
		want:  "'héllo 😀'",
	}, {
		desc:  "StringDoubleQuoteVerbatim",
		value: NewString(`say "hi"`),
		want:  `'say "hi"'`,
	}, {
		desc:  "Date",
		value: NewDate(time.Date(2017, 3, 12, 15, 4, 5, 123000000, time.UTC)),
		want:  `'2017-03-12T15:04:05.123Z'`,
	}, {
		desc:  "DateNonUTC",
		value: NewDate(time.Date(2017, 3, 12, 18, 4, 5, 0, time.FixedZone("MSK", 3*60*60))),
		want:  `'2017-03-12T15:04:05.000Z'`,
	}, {
		desc:  "EmptyArray",
		value: NewArray(),
		want:  `[]`,
	}, {
		desc:  "Array",
		value: NewArray(NewInt(1), NewInt(2)),
		want:  `[1,2]`,
	}, {
		desc:  "ArrayElision",
		value: NewArray(NewUndefined(), NewUndefined(), NewInt(1)),
		want:  `[,,1]`,
	}, {
		desc:  "ArrayTrailingUndefined",
		value: NewArray(NewInt(1), NewUndefined()),
		want:  `[1,]`,
	}, {
		desc:  "ArrayFunctionSlotElided",
		value: NewArray(NewInt(1), NewFunction(nil), NewInt(2)),
		want:  `[1,,2]`,
	}, {
		desc:  "EmptyObject",
		value: NewObject(),
		want:  `{}`,
	}, {
		desc:  "Object",
		value: NewObject().Set("a", NewInt(1)).Set("b", NewString("x")),
		want:  `{a:1,b:'x'}`,
	}, {
		desc:  "ObjectUndefinedEntryOmitted",
		value: NewObject().Set("a", NewUndefined()).Set("b", NewInt(1)),
		want:  `{b:1}`,
	}, {
		desc:  "ObjectFunctionEntryOmitted",
		value: NewObject().Set("a", NewInt(1)).Set("f", NewFunction(nil)).Set("b", NewInt(2)),
		want:  `{a:1,b:2}`,
	}, {
		desc:  "ObjectOnlyOmittedEntries",
		value: NewObject().Set("a", NewUndefined()).Set("f", NewFunction(nil)),
		want:  `{}`,
	}, {
		desc:  "ObjectBareKeys",
		value: NewObject().Set("a_1", NewInt(1)).Set("_x", NewInt(2)),
		want:  `{a_1:1,_x:2}`,
	}, {
		desc:  "ObjectQuotedKeyDigitFirst",
		value: NewObject().Set("1a", NewInt(1)),
		want:  `{'1a':1}`,
	}, {
		desc:  "ObjectQuotedKeyPunctuation",
		value: NewObject().Set("a-b", NewInt(1)),
		want:  `{'a-b':1}`,
	}, {
		desc:  "ObjectQuotedKeyUnicode",
		value: NewObject().Set("ключ", NewInt(1)),
		want:  `{'ключ':1}`,
	}, {
		desc:  "ObjectQuotedKeyEmpty",
		value: NewObject().Set("", NewInt(1)),
		want:  `{'':1}`,
	}, {
		desc:  "NestedDate",
		value: NewObject().Set("at", NewDate(time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC))),
		want:  `{at:'2017-01-01T00:00:00.000Z'}`,
	}} {
		t.Run(tc.desc, func(t *testing.T) {
			tc := tc
			t.Parallel()

			got, ok := Stringify(tc.value)
			if !ok {
				t.Fatalf("Stringify(%v) reported no serialized form", tc.value)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Stringify returned unexpected diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringify_NoForm(t *testing.T) {
	t.Parallel()

	if s, ok := Stringify(NewFunction(func() {})); ok {
		t.Errorf("Stringify(function) = %q, want no serialized form", s)
	}
	if s, ok := Stringify(nil); ok {
		t.Errorf("Stringify(nil) = %q, want no serialized form", s)
	}
}

func TestStringify_CanonicalRoundTrip(t *testing.T) {
	t.Parallel()

	// Canonical text re-serializes to itself.
	for _, input := range []string{
		`{a:1,b:'x\n',c:[1,2,,3]}`,
		`[,,'x']`,
		`{a:[{b:null},,true]}`,
		`{'a b':1.5,c:-2}`,
	} {
		v, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("Parse(%q) failed: %s", input, err)
		}
		got, ok := Stringify(v)
		if !ok {
			t.Fatalf("Stringify of %q reported no serialized form", input)
		}
		if got != input {
			t.Errorf("Stringify(Parse(%q)) = %q, want the input back", input, got)
		}
	}
}
