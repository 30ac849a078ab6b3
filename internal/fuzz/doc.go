// Package fuzztests houses Go fuzz harnesses that exercise the early check
// pipeline (source -> lexer -> cast scanner). Its goal is to smoke test
// robustness and guard against panics or allocator explosions on arbitrary
// inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/сканер кастов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
