// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> layout engine). Its goal is to smoke test robustness
// and guard against panics, hangs and lost text on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/format, internal/testkit.

package fuzztests
