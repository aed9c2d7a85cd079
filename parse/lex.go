package parse

import (
	"github.com/google/shlex"

	"github.com/napalu/kommando/errs"
)

// Split breaks s into words using shell quoting rules
func Split(s string) ([]string, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, errs.ErrInvalidWords.WithArgs(s).Wrap(err)
	}

	return words, nil
}
