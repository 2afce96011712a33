package cli

import (
	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put URL",
	Short: "Make a PUT request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVerb(cmd, "PUT", args[0])
	},
}

func init() {
	addVerbFlags(putCmd, true)
}
