package scheme

import (
	"unicode/utf8"
)

// Rule attempts to match at the front of in. On success it returns what it
// matched and the unconsumed remainder. On failure it returns a *ParseError
// and consumes nothing.
type Rule[T any] func(in string) (out T, rest string, err error)

// satisfy matches one character accepted by pred. Empty input is incomplete.
func satisfy(pred func(rune) bool, reason Reason) Rule[rune] {
	return func(in string) (r rune, rest string, err error) {
		if in == "" {
			return 0, in, incomplete(1)
		}
		r, size := utf8.DecodeRuneInString(in)
		if !pred(r) {
			return 0, in, mismatch(in, reason)
		}
		return r, in[size:], nil
	}
}

func char(c rune) Rule[rune] {
	return satisfy(func(r rune) bool { return r == c }, ReasonChar)
}

func noneOf(c rune) Rule[rune] {
	return satisfy(func(r rune) bool { return r != c }, ReasonNoneOf)
}

// alt tries each rule in order and returns the first success. Only plain
// mismatches fall through to the next rule.
func alt[T any](rules ...Rule[T]) Rule[T] {
	return func(in string) (out T, rest string, err error) {
		for _, r := range rules {
			out, rest, err = r(in)
			if err == nil {
				return
			}
			if !isMismatch(err) {
				var zero T
				return zero, in, err
			}
		}
		var zero T
		return zero, in, mismatch(in, ReasonAlt)
	}
}

// many0 repeats r until it mismatches.
func many0[T any](r Rule[T]) Rule[[]T] {
	return func(in string) (out []T, rest string, err error) {
		rest = in
		for {
			var v T
			var next string
			v, next, err = r(rest)
			if err != nil {
				if isMismatch(err) {
					return out, rest, nil
				}
				return nil, in, err
			}
			if len(next) == len(rest) {
				// no progress; stop rather than loop forever
				return out, rest, nil
			}
			out = append(out, v)
			rest = next
		}
	}
}

func many1[T any](r Rule[T]) Rule[[]T] {
	inner := many0(r)
	return func(in string) (out []T, rest string, err error) {
		out, rest, err = inner(in)
		if err != nil {
			return nil, in, err
		}
		if len(out) == 0 {
			return nil, in, mismatch(in, ReasonMany1)
		}
		return
	}
}

// complete turns an incomplete result into an ordinary mismatch so that a
// repetition stops cleanly at end of input.
func complete[T any](r Rule[T]) Rule[T] {
	return func(in string) (out T, rest string, err error) {
		out, rest, err = r(in)
		if pe, ok := err.(*ParseError); ok && pe.Class == ClassIncomplete {
			return out, in, mismatch(in, ReasonComplete)
		}
		return
	}
}

// takeWhile matches the longest prefix accepted by pred. It never fails.
func takeWhile(pred func(rune) bool) Rule[string] {
	return func(in string) (out string, rest string, err error) {
		for i, r := range in {
			if !pred(r) {
				return in[:i], in[i:], nil
			}
		}
		return in, "", nil
	}
}
