package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/enka/filter"
)

var filterExpr string

// buildsCmd represents the builds command
var buildsCmd = &cobra.Command{
	Use:   "builds <username> <hash>",
	Short: "List the builds saved on a game account",
	Long: `List the builds saved on a game account, grouped by character id.

--filter takes an expression or the name of a filter from the config file.
Expressions see one build at a time, e.g.

  enka builds Algoinde 4Wjv2e --filter 'Level == 90 and icontains(Caption, "dps")'

contains, startsWith and endsWith are case-sensitive operators
(Caption contains "DPS"); icontains, istartsWith and iendsWith ignore case.`,
	Args: cobra.ExactArgs(2),
	RunE: runBuilds,
}

// genshinBuildsCmd represents the genshin-builds command
var genshinBuildsCmd = &cobra.Command{
	Use:   "genshin-builds <username>",
	Short: "List the builds of every Genshin account of a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenshinBuilds,
}

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <username> <hash> <id>",
	Short: "Show a single saved build",
	Args:  cobra.ExactArgs(3),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildsCmd)
	rootCmd.AddCommand(genshinBuildsCmd)
	rootCmd.AddCommand(buildCmd)

	buildsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or configured filter name")
	genshinBuildsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or configured filter name")
}

// buildFilter compiles the --filter flag, nil when it is unset
func buildFilter() (filter.CompiledFilter, error) {
	if filterExpr == "" {
		return nil, nil
	}

	expression := cfg.Filters.Resolve(filterExpr)
	f, err := filter.CompileFilter(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Debug().Str("filter", f.Expression()).Msg("Filtering builds")
	return f, nil
}

func runBuilds(cmd *cobra.Command, args []string) error {
	f, err := buildFilter()
	if err != nil {
		return err
	}

	builds, err := enkaClient.GetBuilds(cmd.Context(), pathSegment(args[0]), pathSegment(args[1]))
	if err != nil {
		return err
	}
	if f != nil {
		builds = filter.SelectGrouped(f, builds)
	}

	logger.Info().
		Str("hash", args[1]).
		Int("characters", len(builds)).
		Msg("Fetched builds")

	return writeOutput(cmd.OutOrStdout(), outputFormat, builds)
}

func runGenshinBuilds(cmd *cobra.Command, args []string) error {
	f, err := buildFilter()
	if err != nil {
		return err
	}

	result, err := enkaClient.GetGenshinBuilds(cmd.Context(), pathSegment(args[0]))
	if err != nil {
		return err
	}
	if f != nil {
		for hash, builds := range result {
			result[hash] = filter.SelectGrouped(f, builds)
		}
	}

	logger.Info().
		Str("username", args[0]).
		Int("hoyos", len(result)).
		Msg("Fetched Genshin builds")

	return writeOutput(cmd.OutOrStdout(), outputFormat, result)
}

func runBuild(cmd *cobra.Command, args []string) error {
	id, err := parseBuildID(args[2])
	if err != nil {
		return err
	}

	build, err := enkaClient.GetBuild(cmd.Context(), pathSegment(args[0]), pathSegment(args[1]), id)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, build)
}
