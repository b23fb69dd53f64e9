package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avastar-tools/go-usb8xxx/fwimage"
	"github.com/avastar-tools/go-usb8xxx/protocol"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <firmware.bin>",
	Short: "Walk a firmware image offline and print its blocks",
	Long: `Decode every block header of a firmware image without touching
hardware. Useful to verify an image before flashing: a truncated image
fails here the same way it would fail mid-transfer.

Example:
  mwflash inspect usb8797_uapsta.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	img, err := fwimage.Open(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Image: %s (%d bytes)\n", args[0], img.Size())

	blocks := 0
	payloadBytes := 0
	sawLast := false

	for {
		rec, err := img.NextRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		tag := ""
		switch {
		case rec.Header.HasLastBlock():
			tag = " [last block]"
			sawLast = true
		case rec.Header.DnldCmd == protocol.CmdFW7:
			tag = " [cmd7, no payload]"
		}

		fmt.Printf("block %3d: cmd=0x%08X base=0x%08X len=%-6d crc=0x%08X%s\n",
			blocks, rec.Header.DnldCmd, rec.Header.BaseAddr,
			rec.Header.DataLength, rec.Header.CRC, tag)

		blocks++
		payloadBytes += len(rec.Payload)
	}

	fmt.Printf("%d blocks, %d payload bytes\n", blocks, payloadBytes)

	if !sawLast {
		return fmt.Errorf("image carries no last-block command; a download would fail as truncated")
	}
	return nil
}
