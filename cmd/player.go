package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/enka/enka"
)

var infoOnly bool

// playerCmd represents the player command
var playerCmd = &cobra.Command{
	Use:   "player <uid>",
	Short: "Show the showcase of a game UID",
	Long: `Fetch the in-game profile card of a UID and the characters the player
has put on display. With --info only the profile card is requested.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlayer,
}

func init() {
	rootCmd.AddCommand(playerCmd)

	playerCmd.Flags().BoolVar(&infoOnly, "info", false, "fetch the profile card only")
}

// playerOutput is what the player command prints
type playerOutput struct {
	*enka.Player
	Avatars []enka.AvatarInfo `json:"avatarInfoList,omitempty"`
}

func runPlayer(cmd *cobra.Command, args []string) error {
	uid, err := parseUID(args[0])
	if err != nil {
		return err
	}

	player, avatars, err := enkaClient.GetPlayer(cmd.Context(), uid, infoOnly)
	if err != nil {
		return err
	}

	logger.Info().
		Uint64("uid", uid).
		Str("nickname", player.PlayerInfo.Nickname).
		Int("avatars", len(avatars)).
		Msg("Fetched player")

	return writeOutput(cmd.OutOrStdout(), outputFormat, playerOutput{Player: player, Avatars: avatars})
}
