// mwflash - Marvell Avastar USB firmware loader
//
// Downloads firmware images to USB-attached Marvell 88W8xxx wireless
// chips over the vendor bulk block-transfer protocol.

package main

import (
	"fmt"
	"os"

	"github.com/avastar-tools/go-usb8xxx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
