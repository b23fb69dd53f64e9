package protocol

import "fmt"

// TruncatedFrameError indicates a buffer too short to hold the fixed-width
// structure being decoded.
type TruncatedFrameError struct {
	// Struct is the name of the structure being decoded
	Struct string

	// Need is the fixed wire size of the structure
	Need int

	// Got is the number of bytes that were available
	Got int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("truncated %s frame: got %d bytes, need %d", e.Struct, e.Got, e.Need)
}

// IsTruncatedFrame returns true if the error is a TruncatedFrameError.
func IsTruncatedFrame(err error) bool {
	_, ok := err.(*TruncatedFrameError)
	return ok
}
