package usb

import (
	"errors"
	"fmt"

	"github.com/google/gousb"
)

// ErrNoDevice indicates no Marvell device was found on the bus.
var ErrNoDevice = errors.New("no marvell device found")

// UnsupportedDeviceError indicates a Marvell device whose product id is
// not in the known chip mapping.
type UnsupportedDeviceError struct {
	// Product is the unrecognized product id
	Product gousb.ID
}

func (e *UnsupportedDeviceError) Error() string {
	return fmt.Sprintf("unhandled marvell device with pid %s", e.Product)
}
