package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/avastar-tools/go-usb8xxx/fwimage"
	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// Loader drives a firmware download to a Marvell USB wireless chip.
// It owns the device handle for the duration of a transfer; no other
// component may use the handle concurrently.
type Loader struct {
	device io.ReadWriter
	config Config
}

// New creates a new Loader with the given device and options.
// The device must implement io.ReadWriter over the chip's bulk download
// endpoints; writes go to bulk-out 0x01, reads come from bulk-in 0x81.
//
// Example:
//
//	dev, _ := usb.Open(0)
//	ldr := loader.New(dev,
//	    loader.WithProgressCallback(progressFunc),
//	    loader.WithLogger(myLogger),
//	)
func New(device io.ReadWriter, opts ...Option) *Loader {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loader{
		device: device,
		config: cfg,
	}
}

// Flash transfers the firmware image to the device block by block:
//
//  1. Read the next record from the image (CMD7 records carry no payload)
//  2. Send it as one bulk-out transfer with the engine-assigned sequence
//     number appended to the header
//  3. Read the sync acknowledgement from bulk-in
//  4. Accept, retry, or abort based on the ack
//
// Transport failures on either direction are retried up to the configured
// budget with a fixed delay, resending the same block under the same
// sequence number. The budget refills after every accepted block. A
// device-reported CRC error or a sequence mismatch aborts immediately.
//
// The transfer succeeds only when the device acks a block whose header
// carries the last-block command. There is no partial success: a failed
// transfer must restart from block zero with a fresh image.
func (l *Loader) Flash(ctx context.Context, img *fwimage.Image) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}

	startTime := time.Now()
	retries := l.config.Retries

	var seqNum uint32
	blocks := 0
	bytesWritten := 0

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		rec, err := img.NextRecord()
		if errors.Is(err, io.EOF) {
			return &MissingLastBlockError{Blocks: blocks}
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}

		l.logDebug("fw header",
			"cmd", fmt.Sprintf("0x%08X", rec.Header.DnldCmd),
			"base_addr", fmt.Sprintf("0x%08X", rec.Header.BaseAddr),
			"data_length", rec.Header.DataLength,
			"crc", fmt.Sprintf("0x%08X", rec.Header.CRC),
		)

		block := protocol.FWData{Header: rec.Header, SeqNum: seqNum}
		buf := protocol.EncodeFWData(block, rec.Payload)

		for {
			l.logDebug("sending block", "seq", seqNum, "bytes", len(buf))

			if _, err := l.device.Write(buf); err != nil {
				l.logError("block send failed", "seq", seqNum, "error", err)
				if retries--; retries == 0 {
					return &RetryExhaustedError{SeqNum: seqNum, Attempts: l.config.Retries, Last: err}
				}
				time.Sleep(l.config.RetryDelay)
				continue
			}

			recv := make([]byte, l.config.RxBufferSize)
			n, err := l.device.Read(recv)
			if err != nil {
				l.logError("sync read failed", "seq", seqNum, "error", err)
				if retries--; retries == 0 {
					return &RetryExhaustedError{SeqNum: seqNum, Attempts: l.config.Retries, Last: err}
				}
				time.Sleep(l.config.RetryDelay)
				continue
			}

			sync, err := protocol.DecodeSyncHeader(recv[:n])
			if err != nil {
				return fmt.Errorf("decode sync header: %w", err)
			}

			l.logDebug("sync header", "cmd", sync.Cmd, "seq", sync.SeqNum)

			if sync.Cmd > 0 {
				return &DeviceCRCError{SeqNum: seqNum, Cmd: sync.Cmd}
			}
			if sync.SeqNum != seqNum {
				return &SequenceMismatchError{Want: seqNum, Got: sync.SeqNum}
			}

			bytesWritten += len(buf)
			blocks++

			if rec.Header.HasLastBlock() {
				l.reportProgress(Progress{
					Phase:        PhaseComplete,
					Block:        blocks,
					SeqNum:       seqNum,
					BytesWritten: bytesWritten,
					ImageOffset:  img.Offset(),
					ImageSize:    img.Size(),
					Percentage:   100,
					ElapsedTime:  time.Since(startTime),
				})
				l.logInfo("firmware download complete",
					"blocks", blocks,
					"bytes", bytesWritten,
					"elapsed", time.Since(startTime).String(),
				)
				return nil
			}

			// Block acked, refill the retry budget for the next one.
			retries = l.config.Retries
			break
		}

		l.reportProgress(Progress{
			Phase:        PhaseFlashing,
			Block:        blocks,
			SeqNum:       seqNum,
			BytesWritten: bytesWritten,
			ImageOffset:  img.Offset(),
			ImageSize:    img.Size(),
			Percentage:   percentage(img.Offset(), img.Size()),
			ElapsedTime:  time.Since(startTime),
		})

		seqNum++
	}
}

func percentage(offset, size int) float64 {
	if size == 0 {
		return 0
	}
	return float64(offset) / float64(size) * 100
}

// reportProgress calls the progress callback if configured.
func (l *Loader) reportProgress(progress Progress) {
	if l.config.ProgressCallback != nil {
		l.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (l *Loader) logDebug(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (l *Loader) logInfo(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (l *Loader) logError(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Error(msg, keysAndValues...)
	}
}
