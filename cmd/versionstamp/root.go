package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/icedream/versionstamp"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile    string
		input      string
		output     string
		identifier string
		sysoPath   string
		sysoArch   string
		jsonPath   string
		quiet      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "versionstamp",
		Short: "Generate version-resource descriptors from a version-declaration file",
		Long: `versionstamp reads a version-declaration file such as

    __version__ = '1.2.3'

normalizes the version into a 4-part numeric tuple and writes a
VSVersionInfo descriptor for executable-packaging tools. It can also
compile the same metadata into a Windows .syso resource object, or emit
a goversioninfo configuration file.

Settings may come from a versionstamp.yaml file in the working
directory; flags override it.`,
		Version:      fmt.Sprintf("%s, commit %s, built at %s", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose, quiet)

			cfg, err := versionstamp.LoadConfig(cfgFile, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			gen := versionstamp.New()
			gen.Log = log
			gen.Metadata = cfg.Metadata
			if cfg.Input != "" {
				gen.Input = cfg.Input
			}
			if cfg.Output != "" {
				gen.Output = cfg.Output
			}
			if cfg.Identifier != "" {
				gen.Identifier = cfg.Identifier
			}
			// Flags beat the config file.
			if cmd.Flags().Changed("input") {
				gen.Input = input
			}
			if cmd.Flags().Changed("output") {
				gen.Output = output
			}
			if cmd.Flags().Changed("identifier") {
				gen.Identifier = identifier
			}
			if quiet {
				gen.Console = io.Discard
			}

			res, err := gen.Generate()
			if err != nil {
				return err
			}

			syso := cfg.Syso
			if cmd.Flags().Changed("syso") {
				syso.Output = sysoPath
			}
			if cmd.Flags().Changed("syso-arch") {
				syso.Arch = sysoArch
			}
			if cmd.Flags().Changed("json") {
				syso.JSON = jsonPath
			}
			if syso.Output == "" && syso.JSON == "" {
				return nil
			}
			if syso.Arch == "" {
				syso.Arch = "amd64"
			}

			vi, err := versionstamp.ResourceInfo(res.Version, res.Components, cfg.Metadata)
			if err != nil {
				// The descriptor was still written; native resources just
				// can't hold a non-numeric version.
				log.Warn().Err(err).Msg("skipping native resource outputs")
				return nil
			}
			vi.IconPath = syso.Icon
			if syso.JSON != "" {
				if err := versionstamp.WriteJSON(vi, syso.JSON); err != nil {
					return err
				}
				log.Info().Str("path", syso.JSON).Msg("wrote goversioninfo config")
			}
			if syso.Output != "" {
				if err := versionstamp.WriteSyso(vi, syso.Output, syso.Arch); err != nil {
					return err
				}
				log.Info().Str("path", syso.Output).Str("arch", syso.Arch).Msg("wrote resource object")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", versionstamp.DefaultConfigFile, "Configuration file path")
	cmd.Flags().StringVarP(&input, "input", "i", versionstamp.DefaultInput, "Version-declaration file to read")
	cmd.Flags().StringVarP(&output, "output", "o", versionstamp.DefaultOutput, "Descriptor file to write")
	cmd.Flags().StringVar(&identifier, "identifier", versionstamp.DefaultIdentifier, "Identifier the version is assigned to")
	cmd.Flags().StringVar(&sysoPath, "syso", "", "Also write a .syso resource object to this path")
	cmd.Flags().StringVar(&sysoArch, "syso-arch", "amd64", "Target architecture for the .syso (386, amd64, arm, arm64)")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Also write a goversioninfo config file to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the descriptor echo and non-error logs")

	return cmd
}

func newLogger(verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
