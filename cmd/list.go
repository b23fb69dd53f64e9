package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avastar-tools/go-usb8xxx/usb"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached Marvell devices",
	Long: `Enumerate Marvell devices (vendor id 1286) on the USB bus.

Devices with a product id outside the known chip mapping are shown as
UNKNOWN; flashing them is refused.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	infos, err := usb.List()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		return usb.ErrNoDevice
	}

	for _, info := range infos {
		fmt.Println(info)
	}
	return nil
}
