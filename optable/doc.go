// Package optable extracts opcode metadata from QuickJS-style opcode headers.
//
// A header declares one opcode per line with a function-style macro row,
// DEF(name, size, n_pop, n_push, fmt, ...), optionally alongside FMT(tag)
// rows declaring the operand-format vocabulary. The scanner matches these
// rows with a fixed pattern, silently skipping everything else in the header
// (comments, preprocessor conditionals, blank lines), and assigns each
// opcode definition a sequential index in encounter order.
package optable
