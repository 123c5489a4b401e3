package lnlst

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/lnlst/pkg/cobrax/topics"
	"github.com/arthur-debert/lnlst/pkg/commands/genconfig"
	"github.com/arthur-debert/lnlst/pkg/config"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic-based help command backed by the embedded
// markdown files.
func initTopics(rootCmd *cobra.Command) {
	helpFS, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{
		Extensions: []string{".md"},
		// Always use Glamour renderer for markdown files
		Renderer: topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpFS, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}

func newGenConfigCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			effective, _ := cmd.Flags().GetBool("effective")
			write, _ := cmd.Flags().GetBool("write")

			opts := genconfig.GenConfigOptions{
				Effective: effective,
				Write:     write,
				Path:      *configFile,
			}
			if effective {
				cfg, err := config.Load(config.LoadOptions{ConfigFile: *configFile})
				if err != nil {
					return err
				}
				opts.Config = cfg
			}

			result, err := genconfig.GenConfig(opts)
			if err != nil {
				return err
			}

			if write {
				if len(result.FilesWritten) == 0 {
					_, err = fmt.Fprint(cmd.ErrOrStderr(), MsgConfigExists)
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, result.FilesWritten[0])
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return err
		},
	}

	cmd.Flags().Bool("effective", false, MsgFlagEffective)
	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.MarkFlagsMutuallyExclusive("effective", "write")

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
