package fwimage

import (
	"fmt"
	"io"
	"os"

	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// Image is a firmware image with a forward-only read cursor. Records are
// consumed one at a time with NextRecord; the cursor never rewinds, so an
// Image cannot be reused for a second download.
type Image struct {
	buf []byte
	off int
}

// Record is one firmware block as stored in the image: a header followed
// by its payload. For CMD7 headers the payload is always empty.
type Record struct {
	// Header is the decoded block header
	Header protocol.FWHeader

	// Payload is the block data, sized by Header.EffectiveDataLength
	Payload []byte
}

// New creates an Image over the given buffer. The buffer is not copied;
// the caller must not modify it while the image is in use.
func New(data []byte) *Image {
	return &Image{buf: data}
}

// Open reads a firmware image file into memory.
//
// Example:
//
//	img, err := fwimage.Open("usb8797_uapsta.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read firmware image: %w", err)
	}
	return New(data), nil
}

// Size returns the total image size in bytes.
func (img *Image) Size() int {
	return len(img.buf)
}

// Offset returns the current cursor position in bytes.
func (img *Image) Offset() int {
	return img.off
}

// NextRecord decodes the record at the cursor and advances past it.
//
// Returns io.EOF once the cursor sits exactly at the end of the buffer.
// A header or payload that cannot be fully read fails with a
// *TruncatedImageError; the cursor position is then undefined and the
// image must be discarded.
func (img *Image) NextRecord() (*Record, error) {
	if img.off == len(img.buf) {
		return nil, io.EOF
	}

	remaining := len(img.buf) - img.off
	if remaining < protocol.FWHeaderSize {
		return nil, &TruncatedImageError{
			Offset: img.off,
			Need:   protocol.FWHeaderSize,
			Got:    remaining,
			What:   "block header",
		}
	}

	header, err := protocol.DecodeFWHeader(img.buf[img.off:])
	if err != nil {
		return nil, fmt.Errorf("offset %d: %w", img.off, err)
	}
	img.off += protocol.FWHeaderSize

	dataLen := int(header.EffectiveDataLength())
	if len(img.buf)-img.off < dataLen {
		return nil, &TruncatedImageError{
			Offset: img.off,
			Need:   dataLen,
			Got:    len(img.buf) - img.off,
			What:   "block payload",
		}
	}

	payload := make([]byte, dataLen)
	copy(payload, img.buf[img.off:img.off+dataLen])
	img.off += dataLen

	return &Record{Header: header, Payload: payload}, nil
}
