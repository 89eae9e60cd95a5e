package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dnsimmons/strobego/strobe"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the STROBE diagnostic version string for both security levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sec := range []strobe.SecParam{strobe.Sec128, strobe.Sec256} {
				s := strobe.New([]byte("strobectl"), sec)
				fmt.Println(s.VersionString())
			}
			return nil
		},
	}
}
