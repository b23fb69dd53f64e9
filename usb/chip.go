package usb

import (
	"github.com/google/gousb"

	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// Chip identifies a supported Marvell Avastar wireless chip variant.
type Chip int

const (
	// ChipUnknown is an unrecognized product id
	ChipUnknown Chip = iota

	// Avastar88W8782U is the 88W8782U (product id 0x2040)
	Avastar88W8782U

	// Avastar88W8897 is the 88W8897 (product id 0x2045)
	Avastar88W8897
)

func (c Chip) String() string {
	switch c {
	case Avastar88W8782U:
		return "Avastar 88W8782U"
	case Avastar88W8897:
		return "Avastar 88W8897"
	}
	return "UNKNOWN"
}

// ChipForProduct maps a product id to its chip variant. The mapping is a
// closed set; unknown ids fail with *UnsupportedDeviceError before any
// transfer is attempted.
func ChipForProduct(pid gousb.ID) (Chip, error) {
	switch uint16(pid) {
	case protocol.ProductID88W8782U:
		return Avastar88W8782U, nil
	case protocol.ProductID88W8897:
		return Avastar88W8897, nil
	default:
		return ChipUnknown, &UnsupportedDeviceError{Product: pid}
	}
}
