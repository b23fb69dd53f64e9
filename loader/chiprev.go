package loader

import (
	"context"
	"fmt"

	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// ChipRev is the result of a chip revision probe.
type ChipRev struct {
	// Revision is the chip revision id, either taken from the response
	// or protocol.USB8797A0 when the response is not trusted
	Revision uint32

	// FromResponse is true when the response carried the extended magic
	// and Revision came from the device
	FromResponse bool

	// Pkt is the raw decoded response
	Pkt protocol.AckPkt
}

// CheckChipRev runs the one-shot chip revision probe: a zero-filled
// fixed-size buffer on bulk-out, one response read on bulk-in. No retry.
//
// The response's ChipRev field is trusted only when its Extend field
// matches protocol.ExtendMagic; otherwise the default revision
// protocol.USB8797A0 is assumed. The result is informational and does not
// gate the firmware transfer.
func (l *Loader) CheckChipRev(ctx context.Context) (*ChipRev, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	probe := make([]byte, protocol.ChipRevTxBufSize)
	if _, err := l.device.Write(probe); err != nil {
		return nil, fmt.Errorf("send chip revision probe: %w", err)
	}

	recv := make([]byte, protocol.ChipRevRxBufSize)
	n, err := l.device.Read(recv)
	if err != nil {
		return nil, fmt.Errorf("read chip revision response: %w", err)
	}

	pkt, err := protocol.DecodeAckPkt(recv[:n])
	if err != nil {
		return nil, fmt.Errorf("decode chip revision response: %w", err)
	}

	l.logDebug("chip revision response",
		"ack_winner", pkt.AckWinner,
		"seq", pkt.Seq,
		"extend", fmt.Sprintf("0x%08X", pkt.Extend),
		"chip_rev", fmt.Sprintf("0x%08X", pkt.ChipRev),
	)

	rev := &ChipRev{Pkt: pkt}
	if pkt.Extend == protocol.ExtendMagic {
		rev.Revision = pkt.ChipRev
		rev.FromResponse = true
		l.logInfo("chip revision", "rev", fmt.Sprintf("0x%08X", rev.Revision), "source", "response")
	} else {
		rev.Revision = protocol.USB8797A0
		l.logInfo("chip revision", "rev", fmt.Sprintf("0x%08X", rev.Revision), "source", "default")
	}

	return rev, nil
}
