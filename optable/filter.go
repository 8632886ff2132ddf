package optable

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Filter selects records by a starlark boolean expression. The record's
// fields are bound as globals: index, size, pop, and push as ints, name and
// fmt as strings.
type Filter struct {
	Expr string
}

// Keep reports whether the filter expression holds for the record.
func (fl *Filter) Keep(rec *Record) (keep bool, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"index": starlark.MakeInt(rec.Index),
		"name":  starlark.String(rec.Name),
		"fmt":   starlark.String(rec.Fmt),
	}
	for attr, str := range map[string]string{
		"size": rec.Size,
		"pop":  rec.Pop,
		"push": rec.Push,
	} {
		var value int
		value, err = strconv.Atoi(str)
		if err != nil {
			err = ErrParseNumber(str)
			return
		}
		pred[attr] = starlark.MakeInt(value)
	}

	prog := "rc=" + fl.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "match", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(fl.Expr)
		return
	}
	st_bool, ok := st_rc.(starlark.Bool)
	if !ok {
		err = ErrParseExpression(fl.Expr)
		return
	}
	keep = bool(st_bool)
	return
}
