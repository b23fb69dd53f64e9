// Package protocol implements the Marvell USB bulk firmware download wire
// format.
//
// # Protocol Overview
//
// The download protocol exchanges fixed-width little-endian structures over
// a pair of bulk endpoints:
//
//	Block:    [FWHeader(16)][SEQ_NUM(4)][PAYLOAD...]     host -> device
//	Ack:      [CMD(4)][SEQ_NUM(4)]                       device -> host
//	Probe:    16 zero bytes                              host -> device
//	ProbeAck: [ACK_WINNER(4)][SEQ(4)][EXTEND(4)][CHIP_REV(4)]
//
// Every multi-byte field is little-endian. The payload of a block follows
// the encoded FWData struct raw, with no framing of its own; its length is
// taken from the image header (and forced to zero for CMD7 blocks, which
// never carry data).
//
// # Codecs
//
// Use the Encode*/Decode* pairs to move between structs and wire bytes:
//
//	buf := protocol.EncodeFWData(protocol.FWData{Header: h, SeqNum: 3}, payload)
//	sync, err := protocol.DecodeSyncHeader(recvBuf)
//
// Decode functions fail with *TruncatedFrameError when the buffer is
// shorter than the structure's fixed width. Buffers longer than the fixed
// width are accepted and the tail ignored, matching the padded bulk-in
// transfers the device produces.
//
// # Sentinels
//
// Two DnldCmd values get special treatment during a download:
//
//   - CmdFW7 (0x00000007): the block carries no payload regardless of the
//     encoded DataLength.
//   - CmdHasLastBlock (0x00000004): the block is the last of the image.
//     Detection is exact equality, see FWHeader.HasLastBlock.
package protocol
