package scheme

import (
	"strconv"
)

var (
	atomHead = alt(symbol, letter)
	atomTail = many0(complete(alt(symbol, letter, digit)))
	digits   = many1(complete(digit))
	quote    = char('"')
	strChars = many0(noneOf('"'))

	expr = alt[*Value](ParseAtom, ParseNumber, ParseString)
)

// ParseAtom reads an identifier. The atoms #t and #f read as booleans.
func ParseAtom(in string) (v *Value, rest string, err error) {
	var h rune
	h, rest, err = atomHead(in)
	if err != nil {
		return nil, in, err
	}

	var tail []rune
	tail, rest, err = atomTail(rest)
	if err != nil {
		return nil, in, err
	}

	text := string(h) + string(tail)
	switch text {
	case "#t":
		return DefaultProducer.Bool(true), rest, nil
	case "#f":
		return DefaultProducer.Bool(false), rest, nil
	}

	v, err = DefaultProducer.Atom(text)
	if err != nil {
		return nil, in, err
	}
	return v, rest, nil
}

// ParseNumber reads a run of decimal digits as an unsigned 32-bit integer.
func ParseNumber(in string) (v *Value, rest string, err error) {
	var ds []rune
	ds, rest, err = digits(in)
	if err != nil {
		return nil, in, err
	}

	var n uint64
	n, err = strconv.ParseUint(string(ds), 10, 32)
	if err != nil {
		// only range errors are possible on a pure digit run
		return nil, in, mismatch(in, ReasonNumberRange)
	}

	return DefaultProducer.Number(uint32(n)), rest, nil
}

// ParseString reads a double-quoted string. Escapes are not interpreted, so
// the string ends at the first '"' after the opening one.
func ParseString(in string) (v *Value, rest string, err error) {
	_, rest, err = quote(in)
	if err != nil {
		return nil, in, err
	}

	var chars []rune
	chars, rest, err = strChars(rest)
	if err != nil {
		return nil, in, err
	}

	_, rest, err = quote(rest)
	if err != nil {
		return nil, in, err
	}

	v, err = DefaultProducer.String(string(chars))
	if err != nil {
		return nil, in, err
	}
	return v, rest, nil
}

// ParseExpr reads one atom, number, or string, tried in that order.
func ParseExpr(in string) (v *Value, rest string, err error) {
	return expr(in)
}
