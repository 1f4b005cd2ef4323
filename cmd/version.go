package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/enka/enka"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the release identifiers stamped into main. A real
// version also becomes the build id of the default User-Agent.
func SetVersion(v, t string) {
	version = v
	buildTime = t
	if v != "" && v != "dev" && enka.Version == "" {
		enka.Version = v
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or client needed
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "enka %s (built %s)\n", version, buildTime)
		fmt.Fprintf(cmd.OutOrStdout(), "User-Agent: %s\n", enka.DefaultUserAgent())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
