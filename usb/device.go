package usb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// The download interface is interface 0 on configuration 1.
const (
	configNum    = 1
	interfaceNum = 0
)

// DeviceInfo describes one Marvell device found on the bus.
type DeviceInfo struct {
	// Bus is the USB bus number
	Bus int

	// Address is the device address on the bus
	Address int

	// Vendor is the vendor id (always protocol.VendorID)
	Vendor gousb.ID

	// Product is the product id
	Product gousb.ID

	// Chip is the mapped chip variant, ChipUnknown for unrecognized ids
	Chip Chip
}

func (i DeviceInfo) String() string {
	return fmt.Sprintf("Bus %03d Device %03d ID %s:%s %s",
		i.Bus, i.Address, i.Vendor, i.Product, i.Chip)
}

// Device is an open Marvell USB device with the download interface
// claimed. It implements io.ReadWriter over the bulk endpoint pair:
// Write sends one bulk-out transfer, Read one bulk-in transfer, each
// bounded by the fixed per-transfer timeout.
type Device struct {
	info    DeviceInfo
	timeout time.Duration

	ctx     *gousb.Context
	dev     *gousb.Device
	cfg     *gousb.Config
	intf    *gousb.Interface
	bulkOut *gousb.OutEndpoint
	bulkIn  *gousb.InEndpoint
}

// List enumerates Marvell devices on the bus without claiming them.
// Devices with an unrecognized product id are included with ChipUnknown.
func List() ([]DeviceInfo, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == protocol.VendorID
	})
	for _, d := range devs {
		defer d.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}

	infos := make([]DeviceInfo, 0, len(devs))
	for _, d := range devs {
		chip, _ := ChipForProduct(d.Desc.Product)
		infos = append(infos, DeviceInfo{
			Bus:     d.Desc.Bus,
			Address: d.Desc.Address,
			Vendor:  d.Desc.Vendor,
			Product: d.Desc.Product,
			Chip:    chip,
		})
	}
	return infos, nil
}

// Open finds the first Marvell device on the bus, maps its product id to
// a chip variant, claims the download interface and opens the bulk
// endpoint pair. timeout bounds every Read/Write call; zero selects the
// protocol default of 100 ms.
//
// The caller must Close the device when done.
func Open(timeout time.Duration) (*Device, error) {
	if timeout <= 0 {
		timeout = protocol.BulkTimeout
	}

	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == protocol.VendorID
	})
	if err != nil {
		for _, d := range devs {
			d.Close()
		}
		ctx.Close()
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}
	if len(devs) == 0 {
		ctx.Close()
		return nil, ErrNoDevice
	}

	// Use the first matching device, close the rest.
	dev := devs[0]
	for _, d := range devs[1:] {
		d.Close()
	}

	chip, err := ChipForProduct(dev.Desc.Product)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, err
	}

	// Windows has no kernel driver to detach and errors here; ignore.
	_ = dev.SetAutoDetach(true)

	cfg, err := dev.Config(configNum)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to get config %d: %w", configNum, err)
	}

	intf, err := cfg.Interface(interfaceNum, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to claim interface %d: %w", interfaceNum, err)
	}

	// gousb addresses endpoints by number; the direction bit of the
	// address is implied by the Out/In call.
	bulkOut, err := intf.OutEndpoint(protocol.EndpointOut & 0x0F)
	if err != nil {
		intf.Close()
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to open bulk out endpoint: %w", err)
	}

	bulkIn, err := intf.InEndpoint(protocol.EndpointIn & 0x0F)
	if err != nil {
		intf.Close()
		cfg.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("failed to open bulk in endpoint: %w", err)
	}

	return &Device{
		info: DeviceInfo{
			Bus:     dev.Desc.Bus,
			Address: dev.Desc.Address,
			Vendor:  dev.Desc.Vendor,
			Product: dev.Desc.Product,
			Chip:    chip,
		},
		timeout: timeout,
		ctx:     ctx,
		dev:     dev,
		cfg:     cfg,
		intf:    intf,
		bulkOut: bulkOut,
		bulkIn:  bulkIn,
	}, nil
}

// Info returns the identification of the open device.
func (d *Device) Info() DeviceInfo {
	return d.info
}

// Write sends p as one bulk-out transfer, blocking up to the configured
// timeout.
func (d *Device) Write(p []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	return d.bulkOut.WriteContext(ctx, p)
}

// Read performs one bulk-in transfer into p, blocking up to the
// configured timeout.
func (d *Device) Read(p []byte) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	return d.bulkIn.ReadContext(ctx, p)
}

// Close releases the interface and closes the device.
func (d *Device) Close() error {
	d.intf.Close()
	if err := d.cfg.Close(); err != nil {
		return err
	}
	if err := d.dev.Close(); err != nil {
		return err
	}
	return d.ctx.Close()
}
