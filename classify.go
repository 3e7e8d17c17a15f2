package scheme

import "strings"

const symbolChars = "!$%&|*+-/:<=?>@^_~#"

func isSymbol(r rune) bool {
	return strings.ContainsRune(symbolChars, r)
}

func isLetter(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	if r >= 'a' && r <= 'z' {
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n'
}

func isAtomStart(r rune) bool {
	return isSymbol(r) || isLetter(r)
}

func isAtomRemainder(r rune) bool {
	return isSymbol(r) || isLetter(r) || isDigit(r)
}

var (
	symbol = satisfy(isSymbol, ReasonOneOf)
	letter = satisfy(isLetter, ReasonOneOf)
	digit  = satisfy(isDigit, ReasonOneOf)
	spaces = takeWhile(isSpace)
)

// Symbol matches one of ! $ % & | * + - / : < = ? > @ ^ _ ~ #
func Symbol(in string) (rune, string, error) { return symbol(in) }

// Letter matches one ASCII letter.
func Letter(in string) (rune, string, error) { return letter(in) }

// Digit matches one of 0-9.
func Digit(in string) (rune, string, error) { return digit(in) }

// Spaces matches the leading run of spaces and newlines, possibly empty.
func Spaces(in string) (string, string, error) { return spaces(in) }
