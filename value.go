package scheme

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindAtom Kind = iota
	KindList
	KindDottedList
	KindNumber
	KindString
	KindBool
)

var kindNames = [...]string{
	KindAtom:       "Atom",
	KindList:       "List",
	KindDottedList: "DottedList",
	KindNumber:     "Number",
	KindString:     "String",
	KindBool:       "Bool",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is one parsed expression. Only the fields belonging to Kind are set.
// A Value must not be modified once it has been returned from the reader or a
// Producer.
type Value struct {
	Kind
	Text   string   // KindAtom, KindString
	Number uint32   // KindNumber
	Bool   bool     // KindBool
	List   []*Value // KindList, KindDottedList
	Tail   *Value   // KindDottedList
}

// String renders v in surface syntax.
func (v *Value) String() string {
	var sb strings.Builder
	v.appendSurface(&sb)
	return sb.String()
}

func (v *Value) appendSurface(sb *strings.Builder) {
	if v == nil {
		return
	}

	switch v.Kind {
	case KindAtom:
		sb.WriteString(v.Text)
	case KindNumber:
		sb.WriteString(strconv.FormatUint(uint64(v.Number), 10))
	case KindString:
		sb.WriteByte('"')
		sb.WriteString(v.Text)
		sb.WriteByte('"')
	case KindBool:
		if v.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case KindList, KindDottedList:
		sb.WriteByte('(')
		for i, c := range v.List {
			if i > 0 {
				sb.WriteByte(' ')
			}
			c.appendSurface(sb)
		}
		if v.Kind == KindDottedList {
			sb.WriteString(" . ")
			v.Tail.appendSurface(sb)
		}
		sb.WriteByte(')')
	}
}

// GoString renders v in tagged form, e.g. Number(123) or Atom("x"). This is
// what the read loop prints.
func (v *Value) GoString() string {
	var sb strings.Builder
	v.appendTagged(&sb)
	return sb.String()
}

func (v *Value) appendTagged(sb *strings.Builder) {
	if v == nil {
		sb.WriteString("nil")
		return
	}

	sb.WriteString(v.Kind.String())
	sb.WriteByte('(')
	switch v.Kind {
	case KindAtom, KindString:
		sb.WriteString(strconv.Quote(v.Text))
	case KindNumber:
		sb.WriteString(strconv.FormatUint(uint64(v.Number), 10))
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindList:
		appendTaggedList(sb, v.List)
	case KindDottedList:
		appendTaggedList(sb, v.List)
		sb.WriteString(", ")
		v.Tail.appendTagged(sb)
	}
	sb.WriteByte(')')
}

func appendTaggedList(sb *strings.Builder, list []*Value) {
	sb.WriteByte('[')
	for i, c := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.appendTagged(sb)
	}
	sb.WriteByte(']')
}

// Equal reports whether v and o are structurally identical.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindAtom, KindString:
		return v.Text == o.Text
	case KindNumber:
		return v.Number == o.Number
	case KindBool:
		return v.Bool == o.Bool
	case KindList, KindDottedList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		if v.Kind == KindDottedList {
			return v.Tail.Equal(o.Tail)
		}
		return true
	}

	return false
}
