// Package fwimage reads Marvell USB firmware images block by block.
//
// # Image Format
//
// A firmware image is a flat sequence of records, each a 16-byte FWHeader
// followed by the payload the header declares:
//
//	[FWHeader][payload][FWHeader][payload]...
//
// CMD7 headers carry no payload regardless of their encoded DataLength
// field. A well-formed image ends with a record whose header carries the
// last-block command; the download terminates on that ack rather than on
// image exhaustion.
//
// # Usage
//
//	img, err := fwimage.Open("usb8797_uapsta.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    rec, err := img.NextRecord()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("cmd=0x%08X addr=0x%08X len=%d\n",
//	        rec.Header.DnldCmd, rec.Header.BaseAddr, len(rec.Payload))
//	}
//
// The cursor only moves forward. Reading past the end of the buffer fails
// with *TruncatedImageError; io.EOF is returned only when the cursor lands
// exactly on the end of the image.
package fwimage
