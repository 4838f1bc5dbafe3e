// Package token defines the lexical token kinds produced by the JavaScript lexer.
// Invariants:
//   - Token.Text is the exact source text of the token; concatenating the
//     texts of all tokens reproduces the input minus whitespace.
//   - Keywords are not separate kinds: they are Word tokens, recognized by text.
//     The single exception is "in", which is lexed as an Operator.
//   - Regular expression literals are String tokens.
package token
