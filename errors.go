// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"github.com/pkg/errors"
)

// Err returns the error status of the MDD, or nil if no operation failed. The
// error wraps the sentinel of the first failure, so it can be tested with
// errors.Is.
func (m *MDD) Err() error {
	return m.error
}

// Error returns the error status of the MDD. We return an empty string if
// there are no errors.
func (m *MDD) Error() string {
	if m.error == nil {
		return ""
	}
	return m.error.Error()
}

// Errored returns true if there was an error during a computation.
func (m *MDD) Errored() bool {
	return m.error != nil
}

// ClearError resets the error status of the MDD. Nodes computed before the
// error are still valid.
func (m *MDD) ClearError() {
	m.error = nil
}

// seterror records a failure and returns Invalid, so that it can be used
// directly as a result. When an error is already set, we keep it as the cause
// and add the new message in front of it.
func (m *MDD) seterror(sentinel error, format string, a ...interface{}) Node {
	err := errors.Wrapf(sentinel, format, a...)
	m.logger.Debug().Err(err).Msg("mdd operation failed")
	if m.error != nil {
		m.error = errors.WithMessage(m.error, err.Error())
		return Invalid
	}
	m.error = err
	return Invalid
}

// operationError is used to escape from a recursive evaluation when a factor
// operation returns a value outside of its universe.
type operationError struct {
	err error
}

// recoverOperation turns a panic raised with an operationError into an error
// status for m; other panics are propagated.
func (m *MDD) recoverOperation(res *Node) {
	if r := recover(); r != nil {
		oe, ok := r.(operationError)
		if !ok {
			panic(r)
		}
		*res = m.seterror(oe.err, "while evaluating a lifted operation")
	}
}
