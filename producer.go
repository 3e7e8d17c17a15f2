package scheme

import "strings"

// Producer builds values that satisfy the reader's invariants.
type Producer interface {
	Atom(s string) (v *Value, err error)
	Number(n uint32) (v *Value)
	String(s string) (v *Value, err error)
	Bool(b bool) (v *Value)
	List(children ...*Value) (v *Value)
	DottedList(tail *Value, children ...*Value) (v *Value, err error)
}

type producer struct{}

var DefaultProducer Producer = producer{}

func MustAtom(s string) (v *Value) {
	var err error
	v, err = DefaultProducer.Atom(s)
	if err != nil {
		panic(err)
	}
	return
}
func (e producer) Atom(s string) (v *Value, err error) {
	if s == "" {
		return nil, ErrEmptyAtom
	}
	for i, r := range s {
		if i == 0 && !isAtomStart(r) {
			return nil, ErrInvalidAtomChar
		} else if i > 0 && !isAtomRemainder(r) {
			return nil, ErrInvalidAtomChar
		}
	}
	if s == "#t" || s == "#f" {
		return nil, ErrReservedAtom
	}

	return &Value{Kind: KindAtom, Text: s}, nil
}

func (e producer) Number(n uint32) (v *Value) {
	return &Value{Kind: KindNumber, Number: n}
}

func MustString(s string) (v *Value) {
	var err error
	v, err = DefaultProducer.String(s)
	if err != nil {
		panic(err)
	}
	return
}
func (e producer) String(s string) (v *Value, err error) {
	if strings.ContainsRune(s, '"') {
		return nil, ErrInvalidStringChar
	}
	return &Value{Kind: KindString, Text: s}, nil
}

func (e producer) Bool(b bool) (v *Value) {
	return &Value{Kind: KindBool, Bool: b}
}

func (e producer) List(children ...*Value) (v *Value) {
	if children == nil {
		children = make([]*Value, 0)
	}
	return &Value{Kind: KindList, List: children}
}

func MustDottedList(tail *Value, children ...*Value) (v *Value) {
	var err error
	v, err = DefaultProducer.DottedList(tail, children...)
	if err != nil {
		panic(err)
	}
	return
}
func (e producer) DottedList(tail *Value, children ...*Value) (v *Value, err error) {
	if len(children) == 0 {
		return nil, ErrEmptyList
	}
	if tail == nil {
		return nil, ErrMissingTail
	}
	return &Value{Kind: KindDottedList, List: children, Tail: tail}, nil
}
