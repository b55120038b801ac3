// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// InstructionError - the failure of one instruction
//
// the ledger aborts every record mutation of the instruction before
// returning this, so the caller only ever sees the name and the kind
type InstructionError struct {
	Instruction string
	Err         error
}

// Instruction - wrap an error with the name of the failed instruction
//
// nil stays nil and an already wrapped error is not wrapped twice
func Instruction(name string, err error) error {
	if nil == err {
		return nil
	}
	if ie, ok := err.(*InstructionError); ok && ie.Instruction == name {
		return err
	}
	return &InstructionError{
		Instruction: name,
		Err:         err,
	}
}

func (e *InstructionError) Error() string {
	return e.Instruction + ": " + e.Err.Error()
}

// Unwrap - expose the error kind to errors.Is and errors.As
func (e *InstructionError) Unwrap() error {
	return e.Err
}
