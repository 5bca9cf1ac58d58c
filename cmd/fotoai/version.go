package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fotoai "github.com/Vrun1506/foto-AI"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fotoai",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fotoai version %s\n", strings.TrimSpace(fotoai.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
