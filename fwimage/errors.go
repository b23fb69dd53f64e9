package fwimage

import "fmt"

// TruncatedImageError indicates an image shorter than its own declared
// block lengths: a header or payload extends past the end of the buffer.
type TruncatedImageError struct {
	// Offset is the cursor position where the short read happened
	Offset int

	// Need is the number of bytes the record required
	Need int

	// Got is the number of bytes left in the image
	Got int

	// What names the piece that could not be read
	What string
}

func (e *TruncatedImageError) Error() string {
	return fmt.Sprintf("truncated firmware image: %s at offset %d needs %d bytes, %d left",
		e.What, e.Offset, e.Need, e.Got)
}
