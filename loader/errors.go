package loader

import (
	"fmt"
)

// DeviceCRCError indicates the device detected a CRC error in the block it
// just received. Fatal: the corruption was found by the device itself, so
// a resend of the same bytes cannot help.
type DeviceCRCError struct {
	// SeqNum is the sequence number of the rejected block
	SeqNum uint32

	// Cmd is the non-zero status command from the sync header
	Cmd uint32
}

func (e *DeviceCRCError) Error() string {
	return fmt.Sprintf("device reported CRC error for block seq %d (status 0x%08X)",
		e.SeqNum, e.Cmd)
}

// SequenceMismatchError indicates the device acknowledged a different
// sequence number than the one sent. Fatal: host and device are
// desynchronized and a resend cannot recover the transfer.
type SequenceMismatchError struct {
	// Want is the sequence number the engine sent
	Want uint32

	// Got is the sequence number echoed by the device
	Got uint32
}

func (e *SequenceMismatchError) Error() string {
	return fmt.Sprintf("sequence mismatch: got %d, expected %d", e.Got, e.Want)
}

// RetryExhaustedError indicates the transport retry budget for one block
// was consumed without a successful send/ack exchange.
type RetryExhaustedError struct {
	// SeqNum is the sequence number of the failed block
	SeqNum uint32

	// Attempts is the retry budget that was consumed
	Attempts int

	// Last is the transport error from the final attempt
	Last error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("block seq %d failed after %d attempts: %v",
		e.SeqNum, e.Attempts, e.Last)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Last
}

// MissingLastBlockError indicates the image was exhausted before any
// record carried the last-block command. The image is truncated: a
// well-formed image always terminates the transfer through the protocol,
// not by running out of records.
type MissingLastBlockError struct {
	// Blocks is the number of blocks acknowledged before exhaustion
	Blocks int
}

func (e *MissingLastBlockError) Error() string {
	return fmt.Sprintf("truncated firmware image: end of image after %d blocks with no last-block command",
		e.Blocks)
}
