package scheme

import (
	"errors"
	"fmt"
	"testing"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "error",
			err:  &ParseError{Class: ClassError, Remaining: "(x", Reason: ReasonAlt},
			want: `Error parsing "(x": Alternative`,
		},
		{
			name: "failure",
			err:  &ParseError{Class: ClassFailure, Remaining: "x)", Reason: ReasonChar},
			want: `Failure parsing "x)": Char`,
		},
		{
			name: "incomplete unknown",
			err:  &ParseError{Class: ClassIncomplete},
			want: "Incomplete parsing: unknown",
		},
		{
			name: "incomplete sized",
			err:  &ParseError{Class: ClassIncomplete, Needed: Needed{Has: true, Size: 3}},
			want: "Incomplete parsing: need 3 more",
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("line 1: %w", &ParseError{Class: ClassError, Remaining: "1e9999", Reason: ReasonNumberRange}),
			want: `Error parsing "1e9999": number out of range`,
		},
		{
			name: "foreign",
			err:  errors.New("boom"),
			want: "boom",
		},
		{
			name: "nil",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Report(tt.err); got != tt.want {
				t.Errorf("Report() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want error
	}{
		{err: &ParseError{Class: ClassError, Reason: ReasonOneOf}, want: ErrNoMatch},
		{err: &ParseError{Class: ClassError, Reason: ReasonNumberRange}, want: ErrNumberRange},
		{err: &ParseError{Class: ClassFailure, Reason: ReasonChar}, want: ErrFailure},
		{err: &ParseError{Class: ClassIncomplete}, want: ErrIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.want)
			}
		})
	}
}

func TestAlt_stopsOnFailure(t *testing.T) {
	failing := func(in string) (rune, string, error) {
		return 0, in, &ParseError{Class: ClassFailure, Remaining: in, Reason: ReasonChar}
	}
	r := alt[rune](failing, letter)
	_, rest, err := r("abc")
	if !errors.Is(err, ErrFailure) {
		t.Fatalf("error = %v, want failure", err)
	}
	if rest != "abc" {
		t.Errorf("rest = %q", rest)
	}
	if got := Report(err); got != `Failure parsing "abc": Char` {
		t.Errorf("Report() = %v", got)
	}
}

func TestMany0_noProgress(t *testing.T) {
	r := many0(takeWhile(isSpace))
	out, rest, err := r("abc")
	if err != nil || len(out) != 0 || rest != "abc" {
		t.Errorf("many0 = %v, %q, %v", out, rest, err)
	}
}
