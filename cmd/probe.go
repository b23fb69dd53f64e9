package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avastar-tools/go-usb8xxx/loader"
	"github.com/avastar-tools/go-usb8xxx/usb"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe the chip revision without flashing",
	Long: `Run the one-shot chip revision probe against the first attached
Marvell device and print the result.

The revision comes from the device only when the response carries the
extended magic; otherwise the default revision (USB8797 A0) is reported.`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	dev, err := usb.Open(bulkTimeout)
	if err != nil {
		return err
	}
	defer dev.Close()

	fmt.Printf("Found marvell device: %s\n", dev.Info())

	ldr := loader.New(dev, loader.WithLogger(newStderrLogger(verbose)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rev, err := ldr.CheckChipRev(ctx)
	if err != nil {
		return fmt.Errorf("chip revision probe: %w", err)
	}
	printChipRev(rev)
	return nil
}
