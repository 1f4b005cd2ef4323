package cmd

import (
	"maps"

	"github.com/spf13/cobra"

	"github.com/s0up4200/enka/enka"
)

var genshinOnly bool

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Show an enka.network profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

// hoyosCmd represents the hoyos command
var hoyosCmd = &cobra.Command{
	Use:   "hoyos <username>",
	Short: "List the game accounts linked to a profile",
	Long: `List the game accounts (hoyos) linked to an enka.network profile, keyed
by hash. Genshin accounts are fully decoded; accounts of other games are
printed as enka sent them.`,
	Args: cobra.ExactArgs(1),
	RunE: runHoyos,
}

// hoyoCmd represents the hoyo command
var hoyoCmd = &cobra.Command{
	Use:   "hoyo <username> <hash>",
	Short: "Show one game account linked to a profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runHoyo,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(hoyosCmd)
	rootCmd.AddCommand(hoyoCmd)

	hoyosCmd.Flags().BoolVar(&genshinOnly, "genshin", false, "only list Genshin Impact accounts")
}

func runProfile(cmd *cobra.Command, args []string) error {
	profile, err := enkaClient.GetProfile(cmd.Context(), pathSegment(args[0]))
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, profile)
}

func runHoyos(cmd *cobra.Command, args []string) error {
	hoyos, err := enkaClient.GetHoyos(cmd.Context(), pathSegment(args[0]))
	if err != nil {
		return err
	}

	if genshinOnly {
		maps.DeleteFunc(hoyos, func(_ enka.Hash, h enka.Hoyo) bool {
			return !h.IsGenshin()
		})
	}

	logger.Info().
		Str("username", args[0]).
		Int("hoyos", len(hoyos)).
		Msg("Fetched hoyos")

	return writeOutput(cmd.OutOrStdout(), outputFormat, hoyos)
}

func runHoyo(cmd *cobra.Command, args []string) error {
	hoyo, err := enkaClient.GetHoyo(cmd.Context(), pathSegment(args[0]), pathSegment(args[1]))
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, hoyo)
}
