package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-oxml/pkg/oxml"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	envFile    string
	logLevel   string
	softBreaks bool
	kind       string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "oxml",
		Short: "Inspect and edit hyperlink and run text in WordprocessingML",
		Long: `oxml reads the text of <w:hyperlink> and <w:r> elements in a .docx package
or a bare WordprocessingML part, and rewrites it in place. Tabs and line
breaks in the text become <w:tab/> and <w:br/> elements, and any added
<w:rPr> is placed where the schema requires it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.configure(cmd)
		},
	}

	cmd.Version = Version
	cmd.SetVersionTemplate(fmt.Sprintf("oxml %s\n", versionString()))

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env", ".env", "Path to environment file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error, off); overrides OXML_LOG_LEVEL")
	flags.BoolVar(&opts.softBreaks, "soft-breaks", false, "Encode line breaks as <w:cr/>; overrides OXML_SOFT_BREAKS")
	flags.StringVarP(&opts.kind, "kind", "k", kindHyperlink, "Element kind to address (hyperlink, run)")

	cmd.AddCommand(
		newTextCmd(opts),
		newSetTextCmd(opts),
		newStyleCmd(opts),
		newApplyCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// configure loads the env file and installs the package configuration
func (o *globalOptions) configure(cmd *cobra.Command) error {
	if err := godotenv.Load(o.envFile); err != nil {
		if cmd.Flags().Changed("env") || !errors.Is(err, fs.ErrNotExist) {
			oxml.WithField("file", o.envFile).Warnf("could not load env file: %v", err)
		}
	}

	config := oxml.ConfigFromEnvironment()
	if o.logLevel != "" {
		config.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("soft-breaks") {
		config.SoftBreaks = o.softBreaks
	}
	if err := config.Validate(); err != nil {
		return err
	}
	oxml.SetGlobalConfig(config)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "oxml %s\n", versionString())
		},
	}
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
