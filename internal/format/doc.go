// Package format re-indents JavaScript source in a single pass over the
// token stream.
//
// Назначение: раскладка токенов по строкам и отступам (layout engine) и
// буфер вывода. Не строит AST и не проверяет синтаксис: некорректный ввод
// форматируется по тем же правилам.
// Зависимости: internal/lexer, internal/token, internal/trace.
package format
