// Package usb opens Marvell Avastar USB wireless chips for firmware
// download.
//
// It wraps google/gousb: vendor-id filtered enumeration, kernel driver
// auto-detach, interface claim, and the bulk endpoint pair (0x01 out,
// 0x81 in) exposed as an io.ReadWriter with a fixed per-transfer timeout.
// The loader package consumes the returned Device without knowing about
// USB.
//
//	dev, err := usb.Open(0) // 0 = default 100 ms timeout
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	fmt.Println(dev.Info()) // Bus 001 Device 004 ID 1286:2045 Avastar 88W8897
//
// Only product ids 0x2040 (88W8782U) and 0x2045 (88W8897) are accepted;
// any other Marvell device fails with *UnsupportedDeviceError before a
// single transfer is made.
package usb
