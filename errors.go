package scheme

import (
	"errors"
	"strconv"
)

var (
	ErrNoMatch           = errors.New("no matching rule")
	ErrFailure           = errors.New("unrecoverable parse failure")
	ErrIncomplete        = errors.New("incomplete input")
	ErrNumberRange       = errors.New("number out of range")
	ErrEmptyAtom         = errors.New("empty atom")
	ErrInvalidAtomChar   = errors.New("invalid atom character")
	ErrReservedAtom      = errors.New("reserved atom")
	ErrInvalidStringChar = errors.New("invalid string character")
	ErrEmptyList         = errors.New("dotted list needs at least one element")
	ErrMissingTail       = errors.New("dotted list needs a tail")
)

// Class separates ordinary mismatches from hard failures and from input that
// ended too early.
type Class int

const (
	ClassError Class = iota
	ClassFailure
	ClassIncomplete
)

// Reason names the rule that rejected the input.
type Reason int

const (
	ReasonAlt Reason = iota
	ReasonOneOf
	ReasonNoneOf
	ReasonChar
	ReasonMany1
	ReasonComplete
	ReasonNumberRange
)

var reasonDescriptions = [...]string{
	ReasonAlt:         "Alternative",
	ReasonOneOf:       "OneOf",
	ReasonNoneOf:      "NoneOf",
	ReasonChar:        "Char",
	ReasonMany1:       "Many1",
	ReasonComplete:    "Complete",
	ReasonNumberRange: "number out of range",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonDescriptions) {
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
	return reasonDescriptions[r]
}

// mismatch reports whether an alternation may move on to its next branch.
func (r Reason) mismatch() bool {
	return r != ReasonNumberRange
}

// Needed is how much more input an incomplete parse wants. Has is false when
// the amount is unknown.
type Needed struct {
	Has  bool
	Size int
}

type ParseError struct {
	Class
	// Remaining is the unconsumed input at the point of failure. Unset for
	// ClassIncomplete.
	Remaining string
	Reason    Reason
	Needed    Needed
}

func (e *ParseError) Error() string {
	switch e.Class {
	case ClassFailure:
		return "Failure parsing \"" + e.Remaining + "\": " + e.Reason.String()
	case ClassIncomplete:
		if !e.Needed.Has {
			return "Incomplete parsing: unknown"
		}
		return "Incomplete parsing: need " + strconv.Itoa(e.Needed.Size) + " more"
	default:
		return "Error parsing \"" + e.Remaining + "\": " + e.Reason.String()
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Class {
	case ClassFailure:
		return ErrFailure
	case ClassIncomplete:
		return ErrIncomplete
	}
	if e.Reason == ReasonNumberRange {
		return ErrNumberRange
	}
	return ErrNoMatch
}

// Report renders err as the single line shown to the user.
func Report(err error) string {
	if err == nil {
		return ""
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return err.Error()
}

func mismatch(in string, r Reason) *ParseError {
	return &ParseError{Class: ClassError, Remaining: in, Reason: r}
}

func incomplete(n int) *ParseError {
	return &ParseError{Class: ClassIncomplete, Needed: Needed{Has: true, Size: n}}
}

// isMismatch reports whether err lets an alternation or repetition continue.
func isMismatch(err error) bool {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Class == ClassError && pe.Reason.mismatch()
}
