// scheme reader: turns one line of Scheme-like text into one value
//
// the reader recognizes a single token-level expression at the front of the
// input and ignores whatever follows it. it does not evaluate anything.
//
// examples:
//
//   variable     => Atom("variable")
//   @#$          => Atom("@#$")
//   #t           => Bool(true)
//   123          => Number(123)
//   "hello"      => String("hello")
//   42abc        => Number(42), "abc" ignored
//
// BNF:
//  <expr>         :: <atom> | <number> | <string> ;
//
//  <atom>         :: ( <letter> | <symbol> ) ( <letter> | <symbol> | <digit> )* ;
//                    the atoms "#t" and "#f" read as booleans.
//
//  <number>       :: <digit>+ ;  must fit in an unsigned 32-bit integer
//
//  <string>       :: "\"" <string-char>* "\"" ;
//  <string-char>  :: <any char except "\""> ;  no escape sequences
//
//  <symbol>       :: "!" | "$" | "%" | "&" | "|" | "*" | "+" | "-" | "/" | ":"
//                  | "<" | "=" | "?" | ">" | "@" | "^" | "_" | "~" | "#" ;
//  <letter>       :: "A" | ... | "Z" | "a" | ... | "z" ;
//  <digit>        :: "0" | ... | "9" ;
//  <spaces>       :: ( " " | "\n" )* ;
//
// failures are reported as *ParseError, see Report for the rendered form.

package scheme
