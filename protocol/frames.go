package protocol

import (
	"encoding/binary"
)

// Wire sizes of the fixed-width structures, in bytes.
const (
	// FWHeaderSize is the encoded size of FWHeader (4 x uint32)
	FWHeaderSize = 16

	// FWDataHeaderSize is the encoded size of FWData before the payload
	// (FWHeader + sequence number)
	FWDataHeaderSize = FWHeaderSize + 4

	// SyncHeaderSize is the encoded size of SyncHeader (2 x uint32)
	SyncHeaderSize = 8

	// AckPktSize is the encoded size of AckPkt (4 x uint32)
	AckPktSize = 16
)

// FWHeader is the per-block header parsed from a firmware image.
type FWHeader struct {
	// DnldCmd is the firmware download command
	DnldCmd uint32

	// BaseAddr is the load base address for this block
	BaseAddr uint32

	// DataLength is the encoded payload length. Not authoritative for
	// CMD7 blocks, which carry no payload.
	DataLength uint32

	// CRC covers the block payload
	CRC uint32
}

// HasLastBlock reports whether this header marks the final block of the
// image. This is an exact-equality compare against CmdHasLastBlock, not a
// bit test: the hardware acks 0x00000004 only, and commands with the bit
// set inside a larger value are ordinary blocks.
func (h FWHeader) HasLastBlock() bool {
	return h.DnldCmd == CmdHasLastBlock
}

// EffectiveDataLength returns the payload length actually carried by the
// block: zero for CMD7, DataLength otherwise.
func (h FWHeader) EffectiveDataLength() uint32 {
	if h.DnldCmd == CmdFW7 {
		return 0
	}
	return h.DataLength
}

// FWData is one firmware block prepared for transmission: the image header
// plus the engine-assigned sequence number. The payload follows the
// encoded struct raw on the wire.
type FWData struct {
	// Header is the block header copied from the image
	Header FWHeader

	// SeqNum is the engine-assigned sequence number, starting at 0
	SeqNum uint32
}

// SyncHeader is the device's per-block acknowledgement.
type SyncHeader struct {
	// Cmd is the status command. Any value above zero reports a CRC
	// error detected by the device for the just-sent block.
	Cmd uint32

	// SeqNum echoes the sequence number of the acknowledged block
	SeqNum uint32
}

// AckPkt is the extended chip revision probe response.
type AckPkt struct {
	// AckWinner is the ack arbitration field
	AckWinner uint32

	// Seq is the response sequence field
	Seq uint32

	// Extend holds ExtendMagic when the response carries extension data
	Extend uint32

	// ChipRev is the chip revision id, valid only with ExtendMagic
	ChipRev uint32
}

// EncodeFWHeader serializes a firmware header to its 16-byte little-endian
// wire form.
func EncodeFWHeader(h FWHeader) []byte {
	buf := make([]byte, FWHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.DnldCmd)
	binary.LittleEndian.PutUint32(buf[4:8], h.BaseAddr)
	binary.LittleEndian.PutUint32(buf[8:12], h.DataLength)
	binary.LittleEndian.PutUint32(buf[12:16], h.CRC)
	return buf
}

// DecodeFWHeader parses a firmware header from the start of buf.
func DecodeFWHeader(buf []byte) (FWHeader, error) {
	if len(buf) < FWHeaderSize {
		return FWHeader{}, &TruncatedFrameError{Struct: "FWHeader", Need: FWHeaderSize, Got: len(buf)}
	}

	return FWHeader{
		DnldCmd:    binary.LittleEndian.Uint32(buf[0:4]),
		BaseAddr:   binary.LittleEndian.Uint32(buf[4:8]),
		DataLength: binary.LittleEndian.Uint32(buf[8:12]),
		CRC:        binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// EncodeFWData builds the complete transmit buffer for one firmware block:
// encoded header, sequence number, then the raw payload.
func EncodeFWData(d FWData, payload []byte) []byte {
	buf := make([]byte, FWDataHeaderSize, FWDataHeaderSize+len(payload))
	copy(buf, EncodeFWHeader(d.Header))
	binary.LittleEndian.PutUint32(buf[FWHeaderSize:FWDataHeaderSize], d.SeqNum)
	return append(buf, payload...)
}

// DecodeFWData parses the header and sequence number from the start of an
// encoded firmware block. The payload, if any, follows at FWDataHeaderSize.
func DecodeFWData(buf []byte) (FWData, error) {
	if len(buf) < FWDataHeaderSize {
		return FWData{}, &TruncatedFrameError{Struct: "FWData", Need: FWDataHeaderSize, Got: len(buf)}
	}

	header, err := DecodeFWHeader(buf)
	if err != nil {
		return FWData{}, err
	}

	return FWData{
		Header: header,
		SeqNum: binary.LittleEndian.Uint32(buf[FWHeaderSize:FWDataHeaderSize]),
	}, nil
}

// EncodeSyncHeader serializes a sync acknowledgement to its 8-byte wire
// form. Used by tests and device emulation; real devices produce these.
func EncodeSyncHeader(s SyncHeader) []byte {
	buf := make([]byte, SyncHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], s.Cmd)
	binary.LittleEndian.PutUint32(buf[4:8], s.SeqNum)
	return buf
}

// DecodeSyncHeader parses a sync acknowledgement from the start of buf.
// Trailing bytes beyond the fixed width are ignored; the device pads its
// bulk-in responses up to the full receive buffer.
func DecodeSyncHeader(buf []byte) (SyncHeader, error) {
	if len(buf) < SyncHeaderSize {
		return SyncHeader{}, &TruncatedFrameError{Struct: "SyncHeader", Need: SyncHeaderSize, Got: len(buf)}
	}

	return SyncHeader{
		Cmd:    binary.LittleEndian.Uint32(buf[0:4]),
		SeqNum: binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}

// EncodeAckPkt serializes a chip revision response to its 16-byte wire
// form. Used by tests and device emulation.
func EncodeAckPkt(p AckPkt) []byte {
	buf := make([]byte, AckPktSize)
	binary.LittleEndian.PutUint32(buf[0:4], p.AckWinner)
	binary.LittleEndian.PutUint32(buf[4:8], p.Seq)
	binary.LittleEndian.PutUint32(buf[8:12], p.Extend)
	binary.LittleEndian.PutUint32(buf[12:16], p.ChipRev)
	return buf
}

// DecodeAckPkt parses a chip revision response from the start of buf.
// Trailing bytes are ignored.
func DecodeAckPkt(buf []byte) (AckPkt, error) {
	if len(buf) < AckPktSize {
		return AckPkt{}, &TruncatedFrameError{Struct: "AckPkt", Need: AckPktSize, Got: len(buf)}
	}

	return AckPkt{
		AckWinner: binary.LittleEndian.Uint32(buf[0:4]),
		Seq:       binary.LittleEndian.Uint32(buf[4:8]),
		Extend:    binary.LittleEndian.Uint32(buf[8:12]),
		ChipRev:   binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}
