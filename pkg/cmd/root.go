package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/go-imports-order/pkg/config"
	"github.com/siyuan-infoblox/go-imports-order/pkg/errors"
	"github.com/siyuan-infoblox/go-imports-order/pkg/orderer"
	"github.com/siyuan-infoblox/go-imports-order/pkg/version"
)

const (
	UseDescription   = "gio [flags] PATH"
	ShortDescription = "Go imports order - A tool to order and group Go imports"
	LongDescription  = `gio orders the imports of Go source files.

Imports are divided into three groups: standard library, platform and
third parties. Within each group they are sorted lexicographically, and
adjacent groups are separated by a single blank line. Files are rewritten
in place.

PATH can be either a single Go file or a directory. When a directory is
specified, all files with a .go extension in the directory and its
subdirectories are processed recursively.

Example:
gio ../connection.go
gio ../memsql/`
)

var (
	cfgFile            string
	thirdPartyPrefixes []string
	platformPrefixes   []string
	verbose            bool
	showVersion        bool
	versionStr         string
)

var rootCmd = &cobra.Command{
	Use:           UseDescription,
	Short:         ShortDescription,
	Long:          LongDescription,
	Args:          validateArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file (default: .gio.yaml or gio.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&thirdPartyPrefixes, "third-party-prefixes", nil, "Comma-separated quoted-path prefixes classified as third party")
	rootCmd.PersistentFlags().StringSliceVar(&platformPrefixes, "platform-prefixes", nil, "Comma-separated quoted-path prefixes classified as platform")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need a path argument
	if showVersion {
		return nil
	}
	if len(args) != 1 {
		_ = cmd.Usage()
		return errors.ErrWrongArgs
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		if versionStr != "" {
			info.Version = versionStr
		}
		fmt.Fprintln(cmd.OutOrStdout(), info)
		return nil
	}

	cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return reportUnexpected(cmd, err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
		if configFile := config.GetConfigFileUsed(); configFile != "" {
			log.Debugf("using config file: %s", configFile)
		}
	}

	o := orderer.New(orderer.Config{
		ThirdPartyPrefixes: cfg.ThirdPartyPrefixes,
		PlatformPrefixes:   cfg.PlatformPrefixes,
	}, log)

	results, err := o.ProcessPath(args[0])
	if err != nil {
		// The cause stays on the logger; the external message is generic.
		log.Debugf("processing %s: %v", args[0], err)
		return reportUnexpected(cmd, err)
	}

	for _, result := range results {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}

	if len(results) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), errors.MsgNoGoFiles)
		return errors.ErrNoGoFiles
	}
	return nil
}

func reportUnexpected(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), errors.MsgUnexpected)
	return err
}

func Execute(ver string) error {
	versionStr = ver
	return rootCmd.Execute()
}
