package cmd

import (
	"errors"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// repository is the GitHub slug releases are published under
const repository = "s0up4200/artifactsmmo"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected at link time
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version
		if parsed, err := semver.ParseTolerant(version); err == nil {
			v = parsed.String()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "artifacts %s (built %s)\n", v, buildTime)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return errors.New("no release found for this platform")
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(cmd.OutOrStdout(), "Already up to date (%s)\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().
		Str("current", current.String()).
		Str("latest", latest.Version()).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated to %s\n", latest.Version())
	return nil
}
