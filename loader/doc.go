// Package loader downloads firmware to Marvell USB8xxx wireless chips
// over their bulk block-transfer protocol.
//
// # Overview
//
// This package drives the complete download sequence:
//   - One-shot chip revision probe (informational)
//   - Block-by-block transfer with per-block acknowledgement
//   - Bounded retry of transport failures with fixed backoff
//   - Immediate abort on device-detected corruption or desynchronization
//
// # Basic Usage
//
//	// User provides the bulk endpoint pair as an io.ReadWriter
//	dev, err := usb.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	img, err := fwimage.Open("usb8797_uapsta.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ldr := loader.New(dev)
//
//	if _, err := ldr.CheckChipRev(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := ldr.Flash(ctx, img); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Only transport failures are retried, and only up to the configured
// budget. Everything else is fatal and surfaces as a structured error:
//   - DeviceCRCError: the device rejected a block it received
//   - SequenceMismatchError: host and device disagree on sequence numbers
//   - RetryExhaustedError: the per-block retry budget ran out
//   - MissingLastBlockError: the image ended without a last-block command
//   - fwimage.TruncatedImageError: a record extends past the image end
//
// A failed transfer is not resumable. Open a fresh image and start again
// from block zero.
//
// # Hardware Independence
//
// The loader does not implement USB communication. Callers provide an
// io.ReadWriter whose Write sends one bulk-out transfer and whose Read
// performs one bulk-in transfer; the usb package in this module provides
// the gousb-backed implementation, and tests use an in-memory fake.
package loader
