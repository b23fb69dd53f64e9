package protocol

import "time"

// Firmware download commands carried in FWHeader.DnldCmd.
const (
	// CmdFW7 is the CMD7 command id. CMD7 blocks carry no payload
	// regardless of the encoded DataLength field.
	CmdFW7 = 0x00000007

	// CmdHasLastBlock marks the final block of a firmware image.
	// Once the device acks it the download is complete.
	CmdHasLastBlock = 0x00000004
)

// Extended chip revision response markers.
const (
	// ExtendHdr is the high word of the extended response magic
	ExtendHdr = 0xAB95

	// ExtendV1 is the low word (extension version 1)
	ExtendV1 = 0x0001

	// ExtendMagic is the full magic expected in AckPkt.Extend for the
	// chip revision field to be trusted
	ExtendMagic = ExtendHdr<<16 | ExtendV1
)

// USB8797 chip revision ids.
const (
	// USB8797A0 is the A0 revision, assumed when the probe response does
	// not carry the extended magic
	USB8797A0 = 0x00000000

	// USB8797B0 is the B0 revision
	USB8797B0 = 0x03800010
)

// Bulk endpoint addresses on the download interface.
const (
	// EndpointOut is the bulk-out endpoint address (host to device)
	EndpointOut = 0x01

	// EndpointIn is the bulk-in endpoint address (device to host)
	EndpointIn = 0x81
)

// Transfer buffer sizes.
const (
	// ChipRevTxBufSize is the size of the zero-filled chip revision probe
	ChipRevTxBufSize = 16

	// ChipRevRxBufSize is the receive buffer size for the probe response
	ChipRevRxBufSize = 2048

	// FWDnldTxBufSize is the transmit buffer size for firmware download
	FWDnldTxBufSize = 620

	// FWDnldRxBufSize is the receive buffer size for sync responses
	FWDnldRxBufSize = 2048
)

// Retry and timing parameters.
const (
	// MaxFWRetry is the transport retry budget per block
	MaxFWRetry = 3

	// BulkTimeout is the fixed per-transfer timeout for bulk messages
	BulkTimeout = 100 * time.Millisecond

	// RetryDelay is the backoff between transport retry attempts
	RetryDelay = 100 * time.Millisecond
)

// USB identification.
const (
	// VendorID is the Marvell USB vendor id
	VendorID = 0x1286

	// ProductID88W8782U identifies the Avastar 88W8782U
	ProductID88W8782U = 0x2040

	// ProductID88W8897 identifies the Avastar 88W8897
	ProductID88W8897 = 0x2045
)

// XmitSize returns the on-wire size of a firmware data block carrying
// dataLen payload bytes: FWHeader + payload + sequence number.
func XmitSize(dataLen uint32) uint32 {
	return FWHeaderSize + dataLen + 4
}
