package optable

import (
	"github.com/ezrec/opdump/translate"
)

var f = translate.From

type ErrScan struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrScan) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrScan) Unwrap() error {
	return err.Err
}

type ErrRead struct {
	Err error
}

func (err ErrRead) Error() string {
	return f("input read failed: %v", err.Err)
}

func (err ErrRead) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not a boolean match expression", string(err))
}
