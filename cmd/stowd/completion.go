package stowd

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/stowd/stowd/pkg/commands"
	"github.com/stowd/stowd/pkg/platform"
)

// completeApps lists the dotfiles apps not already named in args
func completeApps(opts *rootOptions, args []string) []string {
	apps, err := commands.ListApps(commands.ListAppsOptions{
		DotfilesDir: opts.dotfilesDir,
		ConfigPath:  opts.configPath,
		Platform:    opts.platform,
	})
	if err != nil {
		return nil
	}

	var out []string
	for _, app := range apps {
		if !slices.Contains(args, app) {
			out = append(out, app)
		}
	}
	return out
}

func registerCompletions(cmd *cobra.Command, opts *rootOptions) {
	apps := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeApps(opts, nil), cobra.ShellCompDirectiveNoFileComp
	}
	for _, name := range []string{flagStow, flagUnstow, flagStowRoot, flagUnstowRoot} {
		_ = cmd.RegisterFlagCompletionFunc(name, apps)
	}

	_ = cmd.RegisterFlagCompletionFunc(flagPlatform, cobra.FixedCompletions(
		[]string{platform.Termux, platform.Linux, platform.OSX}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc(flagDotfilesDir, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	})
	_ = cmd.RegisterFlagCompletionFunc(flagCompletion, cobra.FixedCompletions(
		[]string{"bash", "zsh", "fish", "powershell"}, cobra.ShellCompDirectiveNoFileComp))
}

// GenCompletion writes the completion script of root for shell to out
func GenCompletion(root *cobra.Command, out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf(MsgErrCompletionShell, shell)
	}
}
