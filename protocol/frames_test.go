package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestFWHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		header FWHeader
	}{
		{
			name:   "zero header",
			header: FWHeader{},
		},
		{
			name: "typical block",
			header: FWHeader{
				DnldCmd:    0x00000001,
				BaseAddr:   0x88000000,
				DataLength: 512,
				CRC:        0xDEADBEEF,
			},
		},
		{
			name: "last block",
			header: FWHeader{
				DnldCmd:    CmdHasLastBlock,
				BaseAddr:   0x88010000,
				DataLength: 16,
				CRC:        0x12345678,
			},
		},
		{
			name: "max values",
			header: FWHeader{
				DnldCmd:    0xFFFFFFFF,
				BaseAddr:   0xFFFFFFFF,
				DataLength: 0xFFFFFFFF,
				CRC:        0xFFFFFFFF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := EncodeFWHeader(tt.header)
			if len(buf) != FWHeaderSize {
				t.Fatalf("encoded size = %d, want %d", len(buf), FWHeaderSize)
			}

			decoded, err := DecodeFWHeader(buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if decoded != tt.header {
				t.Errorf("round trip = %+v, want %+v", decoded, tt.header)
			}
		})
	}
}

func TestFWHeaderWireLayout(t *testing.T) {
	header := FWHeader{
		DnldCmd:    0x04030201,
		BaseAddr:   0x08070605,
		DataLength: 0x0C0B0A09,
		CRC:        0x100F0E0D,
	}

	want := []byte{
		0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08,
		0x09, 0x0A, 0x0B, 0x0C,
		0x0D, 0x0E, 0x0F, 0x10,
	}

	got := EncodeFWHeader(header)
	if !bytes.Equal(got, want) {
		t.Errorf("wire bytes = % X, want % X", got, want)
	}
}

func TestDecodeFWHeaderTruncated(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "nil buffer", buf: nil},
		{name: "empty buffer", buf: []byte{}},
		{name: "one byte short", buf: make([]byte, FWHeaderSize-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFWHeader(tt.buf)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsTruncatedFrame(err) {
				t.Errorf("error type = %T, want *TruncatedFrameError", err)
			}
			if !strings.Contains(err.Error(), "FWHeader") {
				t.Errorf("error should name the struct, got: %v", err)
			}
		})
	}
}

func TestFWDataRoundTrip(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	data := FWData{
		Header: FWHeader{
			DnldCmd:    0x00000001,
			BaseAddr:   0x88000000,
			DataLength: uint32(len(payload)),
			CRC:        0x0BADF00D,
		},
		SeqNum: 7,
	}

	buf := EncodeFWData(data, payload)

	if len(buf) != FWDataHeaderSize+len(payload) {
		t.Fatalf("encoded size = %d, want %d", len(buf), FWDataHeaderSize+len(payload))
	}

	decoded, err := DecodeFWData(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded != data {
		t.Errorf("round trip = %+v, want %+v", decoded, data)
	}

	if !bytes.Equal(buf[FWDataHeaderSize:], payload) {
		t.Errorf("payload on wire = % X, want % X", buf[FWDataHeaderSize:], payload)
	}
}

func TestEncodeFWDataEmptyPayload(t *testing.T) {
	data := FWData{
		Header: FWHeader{DnldCmd: CmdFW7, DataLength: 128},
		SeqNum: 0,
	}

	buf := EncodeFWData(data, nil)
	if len(buf) != FWDataHeaderSize {
		t.Errorf("encoded size = %d, want %d (no payload)", len(buf), FWDataHeaderSize)
	}
}

func TestSyncHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sync SyncHeader
	}{
		{name: "success ack", sync: SyncHeader{Cmd: 0, SeqNum: 12}},
		{name: "crc error ack", sync: SyncHeader{Cmd: 1, SeqNum: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeSyncHeader(EncodeSyncHeader(tt.sync))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decoded != tt.sync {
				t.Errorf("round trip = %+v, want %+v", decoded, tt.sync)
			}
		})
	}
}

func TestDecodeSyncHeaderPaddedBuffer(t *testing.T) {
	// The device answers with a padded bulk-in transfer; the decoder must
	// only consume the fixed-width prefix.
	buf := make([]byte, FWDnldRxBufSize)
	copy(buf, EncodeSyncHeader(SyncHeader{Cmd: 0, SeqNum: 42}))

	sync, err := DecodeSyncHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sync.SeqNum != 42 {
		t.Errorf("SeqNum = %d, want 42", sync.SeqNum)
	}
}

func TestDecodeSyncHeaderTruncated(t *testing.T) {
	_, err := DecodeSyncHeader(make([]byte, SyncHeaderSize-1))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsTruncatedFrame(err) {
		t.Errorf("error type = %T, want *TruncatedFrameError", err)
	}
}

func TestAckPktRoundTrip(t *testing.T) {
	pkt := AckPkt{
		AckWinner: 1,
		Seq:       2,
		Extend:    ExtendMagic,
		ChipRev:   USB8797B0,
	}

	decoded, err := DecodeAckPkt(EncodeAckPkt(pkt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != pkt {
		t.Errorf("round trip = %+v, want %+v", decoded, pkt)
	}
}

func TestDecodeAckPktTruncated(t *testing.T) {
	_, err := DecodeAckPkt(make([]byte, AckPktSize-4))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsTruncatedFrame(err) {
		t.Errorf("error type = %T, want *TruncatedFrameError", err)
	}
}

func TestExtendMagicValue(t *testing.T) {
	if ExtendMagic != 0xAB950001 {
		t.Errorf("ExtendMagic = 0x%08X, want 0xAB950001", uint32(ExtendMagic))
	}
}

func TestHasLastBlockExactEquality(t *testing.T) {
	// The last-block check is an exact compare, not a bit test. A command
	// with the 0x04 bit set inside a larger value is an ordinary block.
	tests := []struct {
		name string
		cmd  uint32
		want bool
	}{
		{name: "sentinel value", cmd: CmdHasLastBlock, want: true},
		{name: "zero", cmd: 0, want: false},
		{name: "bit set in larger value", cmd: 0x00000005, want: false},
		{name: "bit set with high bits", cmd: 0x00000104, want: false},
		{name: "cmd7", cmd: CmdFW7, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := FWHeader{DnldCmd: tt.cmd}
			if got := h.HasLastBlock(); got != tt.want {
				t.Errorf("HasLastBlock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveDataLength(t *testing.T) {
	tests := []struct {
		name   string
		header FWHeader
		want   uint32
	}{
		{
			name:   "ordinary block",
			header: FWHeader{DnldCmd: 0x01, DataLength: 600},
			want:   600,
		},
		{
			name:   "cmd7 ignores encoded length",
			header: FWHeader{DnldCmd: CmdFW7, DataLength: 600},
			want:   0,
		},
		{
			name:   "cmd7 with zero length",
			header: FWHeader{DnldCmd: CmdFW7, DataLength: 0},
			want:   0,
		},
		{
			name:   "last block keeps its length",
			header: FWHeader{DnldCmd: CmdHasLastBlock, DataLength: 16},
			want:   16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.header.EffectiveDataLength(); got != tt.want {
				t.Errorf("EffectiveDataLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestXmitSize(t *testing.T) {
	tests := []struct {
		name    string
		dataLen uint32
		want    uint32
	}{
		{name: "empty payload", dataLen: 0, want: 20},
		{name: "full tx buffer", dataLen: 600, want: 620},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XmitSize(tt.dataLen); got != tt.want {
				t.Errorf("XmitSize(%d) = %d, want %d", tt.dataLen, got, tt.want)
			}
		})
	}
}
