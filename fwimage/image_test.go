package fwimage

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// buildImage concatenates encoded records into an image buffer.
func buildImage(records ...[]byte) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		buf.Write(r)
	}
	return buf.Bytes()
}

// record encodes one header+payload pair as stored in an image.
func record(header protocol.FWHeader, payload []byte) []byte {
	return append(protocol.EncodeFWHeader(header), payload...)
}

func TestNextRecord(t *testing.T) {
	payload1 := []byte{0x01, 0x02, 0x03, 0x04}
	payload2 := []byte{0xAA, 0xBB}

	img := New(buildImage(
		record(protocol.FWHeader{DnldCmd: 1, BaseAddr: 0x100, DataLength: 4, CRC: 0x11}, payload1),
		record(protocol.FWHeader{DnldCmd: protocol.CmdHasLastBlock, BaseAddr: 0x200, DataLength: 2, CRC: 0x22}, payload2),
	))

	rec, err := img.NextRecord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header.BaseAddr != 0x100 {
		t.Errorf("BaseAddr = 0x%X, want 0x100", rec.Header.BaseAddr)
	}
	if !bytes.Equal(rec.Payload, payload1) {
		t.Errorf("payload = % X, want % X", rec.Payload, payload1)
	}

	rec, err = img.NextRecord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Header.HasLastBlock() {
		t.Error("second record should carry the last-block command")
	}
	if !bytes.Equal(rec.Payload, payload2) {
		t.Errorf("payload = % X, want % X", rec.Payload, payload2)
	}

	if _, err = img.NextRecord(); err != io.EOF {
		t.Errorf("after last record err = %v, want io.EOF", err)
	}
}

func TestNextRecordCMD7(t *testing.T) {
	// A CMD7 header declares a length but carries no payload. The bytes
	// after the header belong to the next record.
	next := protocol.FWHeader{DnldCmd: protocol.CmdHasLastBlock, DataLength: 0}

	img := New(buildImage(
		record(protocol.FWHeader{DnldCmd: protocol.CmdFW7, DataLength: 620}, nil),
		record(next, nil),
	))

	rec, err := img.NextRecord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Payload) != 0 {
		t.Errorf("CMD7 payload length = %d, want 0", len(rec.Payload))
	}

	rec, err = img.NextRecord()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header != next {
		t.Errorf("second header = %+v, want %+v", rec.Header, next)
	}
}

func TestNextRecordTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		what string
	}{
		{
			name: "partial header",
			data: make([]byte, protocol.FWHeaderSize-3),
			what: "block header",
		},
		{
			name: "payload past end",
			data: record(protocol.FWHeader{DnldCmd: 1, DataLength: 100}, []byte{0x01, 0x02}),
			what: "block payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(tt.data)
			_, err := img.NextRecord()
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var truncated *TruncatedImageError
			if !errors.As(err, &truncated) {
				t.Fatalf("error type = %T, want *TruncatedImageError", err)
			}
			if truncated.What != tt.what {
				t.Errorf("What = %q, want %q", truncated.What, tt.what)
			}
		})
	}
}

func TestNextRecordEmptyImage(t *testing.T) {
	img := New(nil)
	if _, err := img.NextRecord(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestCursorAdvances(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	img := New(record(protocol.FWHeader{DnldCmd: 1, DataLength: 4}, payload))

	if img.Offset() != 0 {
		t.Errorf("initial offset = %d, want 0", img.Offset())
	}
	if img.Size() != protocol.FWHeaderSize+4 {
		t.Errorf("size = %d, want %d", img.Size(), protocol.FWHeaderSize+4)
	}

	if _, err := img.NextRecord(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Offset() != img.Size() {
		t.Errorf("offset after read = %d, want %d", img.Offset(), img.Size())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/firmware.bin"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
