package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/avastar-tools/go-usb8xxx/fwimage"
	"github.com/avastar-tools/go-usb8xxx/loader"
	"github.com/avastar-tools/go-usb8xxx/usb"
)

var flashCmd = &cobra.Command{
	Use:   "flash <firmware.bin>",
	Short: "Download a firmware image to the chip",
	Long: `Download a firmware image to the first attached Marvell device.

The sequence is:
  1. Find a Marvell device and map its product id to a chip variant
  2. Claim the download interface (detaching the kernel driver if needed)
  3. Probe the chip revision (informational, does not gate the transfer)
  4. Send the image block by block, acknowledging every block

Transport failures are retried per block up to the --retries budget;
a device-reported CRC error or a sequence mismatch aborts immediately.

Example:
  mwflash flash usb8797_uapsta.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runFlash,
}

func init() {
	rootCmd.AddCommand(flashCmd)
}

func runFlash(cmd *cobra.Command, args []string) error {
	img, err := fwimage.Open(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Read firmware %s (%d bytes)\n", args[0], img.Size())

	dev, err := usb.Open(bulkTimeout)
	if err != nil {
		return err
	}
	defer dev.Close()

	fmt.Printf("Found marvell device: %s\n", dev.Info())

	bar := progressbar.NewOptions(img.Size(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Flashing"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionOnCompletion(func() { fmt.Println() }),
	)

	ldr := loader.New(dev,
		loader.WithLogger(newStderrLogger(verbose)),
		loader.WithRetries(retries),
		loader.WithProgressCallback(func(p loader.Progress) {
			_ = bar.Set(p.ImageOffset)
		}),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rev, err := ldr.CheckChipRev(ctx)
	if err != nil {
		return fmt.Errorf("chip revision probe: %w", err)
	}
	printChipRev(rev)

	if err := ldr.Flash(ctx, img); err != nil {
		fmt.Println()
		return fmt.Errorf("firmware download: %w", err)
	}

	_ = bar.Finish()
	fmt.Println("Firmware download complete")
	return nil
}

func printChipRev(rev *loader.ChipRev) {
	source := "default"
	if rev.FromResponse {
		source = "response"
	}
	fmt.Printf("Chip revision: 0x%08X (from %s)\n", rev.Revision, source)
}
