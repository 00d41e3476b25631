package stowd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/stowd/stowd/internal/version"
	"github.com/stowd/stowd/pkg/commands"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/output"
	"github.com/stowd/stowd/pkg/settings"
	"github.com/stowd/stowd/pkg/targets"
)

// Flag names
const (
	flagStow        = "stow"
	flagUnstow      = "unstow"
	flagStowRoot    = "stow-root"
	flagUnstowRoot  = "unstow-root"
	flagPlatform    = "platform"
	flagConfig      = "config"
	flagDotfilesDir = "dotfiles-dir"
	flagVerbose     = "verbose"
	flagQuiet       = "quiet"
	flagSimulate    = "simulate"
	flagNo          = "no"
	flagRoot        = "root"
	flagVersion     = "version"
	flagCompletion  = "completion"
)

type rootOptions struct {
	lists       targets.Lists
	platform    string
	configPath  string
	dotfilesDir string
	verbosity   int
	quiet       bool
	simulate    bool
	no          bool
	root        bool
	completion  string
}

// explicitFlags returns the settings given on the command line. Flags the
// user did not pass stay nil so config values can apply.
func (o *rootOptions) explicitFlags(cmd *cobra.Command) settings.Flags {
	f := settings.Flags{DotfilesDir: o.dotfilesDir}
	changed := cmd.Flags().Changed

	if changed(flagVerbose) {
		f.Verbose = settings.Bool(o.verbosity > 0)
	}
	if changed(flagQuiet) {
		f.Quiet = settings.Bool(o.quiet)
	}
	switch {
	case changed(flagSimulate):
		f.Simulate = settings.Bool(o.simulate)
	case changed(flagNo):
		f.Simulate = settings.Bool(o.no)
	}
	if changed(flagRoot) {
		f.Root = settings.Bool(o.root)
	}
	return f
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "stowd [NAME...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.quiet {
				logging.SetupLogger(-1)
			} else {
				logging.SetupLogger(opts.verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.completion != "" {
				return GenCompletion(cmd.Root(), cmd.OutOrStdout(), opts.completion)
			}

			lists := opts.lists
			lists.Stow = append(append([]string{}, args...), lists.Stow...)

			noColor := true
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				noColor = !output.ColorEnabled(f)
			}

			_, err := commands.Run(cmd.Context(), commands.RunOptions{
				Lists:      lists,
				Flags:      opts.explicitFlags(cmd),
				ConfigPath: opts.configPath,
				Platform:   opts.platform,
				Out:        cmd.OutOrStdout(),
				ErrOut:     cmd.ErrOrStderr(),
				NoColor:    noColor,
			})
			if err != nil {
				log.Debug().Str("code", string(errors.GetErrorCode(err))).Msg("Run failed")
				if errors.IsSetupFailure(err) {
					return fmt.Errorf(MsgErrSetup, err)
				}
				return fmt.Errorf(MsgErrRun, err)
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeApps(opts, args), cobra.ShellCompDirectiveNoFileComp
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.StringSliceVarP(&opts.lists.Stow, flagStow, "s", nil, MsgFlagStow)
	flags.StringSliceVarP(&opts.lists.Unstow, flagUnstow, "u", nil, MsgFlagUnstow)
	flags.StringSliceVarP(&opts.lists.StowRoot, flagStowRoot, "S", nil, MsgFlagStowRoot)
	flags.StringSliceVarP(&opts.lists.UnstowRoot, flagUnstowRoot, "U", nil, MsgFlagUnstowRoot)
	flags.StringVarP(&opts.platform, flagPlatform, "p", "", MsgFlagPlatform)
	flags.StringVarP(&opts.configPath, flagConfig, "c", "", MsgFlagConfig)
	flags.StringVarP(&opts.dotfilesDir, flagDotfilesDir, "d", "", MsgFlagDotfilesDir)
	flags.CountVarP(&opts.verbosity, flagVerbose, "v", MsgFlagVerbose)
	flags.BoolVarP(&opts.quiet, flagQuiet, "q", false, MsgFlagQuiet)
	flags.BoolVarP(&opts.simulate, flagSimulate, "n", false, MsgFlagSimulate)
	flags.BoolVar(&opts.no, flagNo, false, MsgFlagNo)
	flags.BoolVarP(&opts.root, flagRoot, "r", false, MsgFlagRoot)
	flags.BoolP(flagVersion, "V", false, MsgFlagVersion)
	flags.StringVar(&opts.completion, flagCompletion, "", MsgFlagCompletion)
	_ = flags.MarkHidden(flagNo)

	rootCmd.MarkFlagsMutuallyExclusive(flagVerbose, flagQuiet)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersion, version.Version, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	registerCompletions(rootCmd, opts)

	return rootCmd
}
