package peg

import "fmt"

// GrammarError reports a compile-time failure, either from the textual PEG
// parser or from the declared/used checks run after parsing. Position is
// the location within the grammar source; File is the name passed to
// CompileNamed ("<grammar>" when compiled through Compile).
type GrammarError struct {
	File string
	Pos  Position
	Msg  string
}

func (err *GrammarError) Error() string {
	file := err.File
	if file == "" {
		file = "<grammar>"
	}
	return fmt.Sprintf("%s(%s) Error: %s", file, err.Pos, err.Msg)
}

func newGrammarError(file string, pos Position, format string, v ...interface{}) *GrammarError {
	return &GrammarError{File: file, Pos: pos, Msg: fmt.Sprintf(format, v...)}
}

// ConstructionError reports illegal programmatic combinator nesting, such
// as wrapping an already-nullable pattern in another greedy repetition.
type ConstructionError struct {
	Msg string
}

func (err *ConstructionError) Error() string {
	return "peg: construction error: " + err.Msg
}

func newConstructionError(format string, v ...interface{}) *ConstructionError {
	return &ConstructionError{Msg: fmt.Sprintf(format, v...)}
}

// internal sentinel errors: errCorner marks a node kind the engine never
// executes in well-formed IR; errCallstackOverflow is what ConfiguredMatch
// returns when Config.CallstackLimit is exceeded.
var (
	errCorner            = fmt.Errorf("peg: internal corner case reached")
	errCallstackOverflow = fmt.Errorf("peg: callstack overflow")
)
