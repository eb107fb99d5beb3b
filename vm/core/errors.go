package core

import "errors"

// Code is an exit code reported to the ledger when script fails.
type Code int8

// Error is a script failure with a stable exit code.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

var (
	ErrIndexOutOfBound = &Error{Code: 1, Msg: "index out of bound"}
	ErrItemMissing     = &Error{Code: 2, Msg: "item missing"}
	ErrLengthNotEnough = &Error{Code: 3, Msg: "length not enough"}
	ErrEncoding        = &Error{Code: 4, Msg: "encoding"}

	// ErrCheckpointCell is raised if there is not exactly one checkpoint cell on a side.
	ErrCheckpointCell = &Error{Code: 5, Msg: "checkpoint cell"}
	// ErrCheckpointCapacityMismatch is raised if capacity of the checkpoint cell changed.
	ErrCheckpointCapacityMismatch = &Error{Code: 6, Msg: "checkpoint capacity mismatch"}
	// ErrCheckpointDataMismatch is raised if field that is fixed for the transition changed.
	ErrCheckpointDataMismatch = &Error{Code: 7, Msg: "checkpoint data mismatch"}
	// ErrBadSudtDataFormat is raised if token cell data can't hold an amount.
	ErrBadSudtDataFormat = &Error{Code: 8, Msg: "bad sudt data format"}
	// ErrBadWitnessInputType is raised if witness has no mode selector.
	ErrBadWitnessInputType = &Error{Code: 9, Msg: "bad witness input type"}
	// ErrWitnessLock is raised if periodic update is submitted without lock data.
	ErrWitnessLock = &Error{Code: 10, Msg: "witness lock"}
	// ErrSignatureMismatch is raised if admin signature is not valid.
	ErrSignatureMismatch = &Error{Code: 11, Msg: "signature mismatch"}
	// ErrATAmountMismatch is raised if token balances changed in a way that is not allowed.
	ErrATAmountMismatch = &Error{Code: 12, Msg: "at amount mismatch"}
	// ErrCheckpointData is raised if checkpoint data can't be used for reward computation.
	ErrCheckpointData = &Error{Code: 13, Msg: "checkpoint data"}
	// ErrAmountOverflow is raised if sum of token amounts doesn't fit into 128 bits.
	ErrAmountOverflow = &Error{Code: 14, Msg: "amount overflow"}
	// ErrMaxCycles is raised if script consumed more cycles than allowed.
	ErrMaxCycles = &Error{Code: 15, Msg: "max cycles exceeded"}
	// ErrUnknownScript is raised if there is no script for the code hash.
	ErrUnknownScript = &Error{Code: 16, Msg: "unknown script"}
)

// ExitCode returns exit code for the error returned by the script.
// Zero for nil, -1 if error doesn't carry a code.
func ExitCode(err error) int8 {
	if err == nil {
		return 0
	}
	var serr *Error
	if errors.As(err, &serr) {
		return int8(serr.Code)
	}
	return -1
}
