package cmd

import (
	"os"

	"github.com/creativeprojects/folders/cfg"
	"github.com/creativeprojects/folders/term"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "folders",
	Short:        "Manage folders on IMAP accounts and local maildir storage",
	Long:         "\nManage folders on IMAP accounts and local maildir storage: list, create, rename and delete",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig, initLog)
	flag := rootCmd.PersistentFlags()
	flag.StringVarP(&global.configFile, "config", "c", "folders.yaml", "configuration file")
	flag.BoolVarP(&global.quiet, "quiet", "q", false, "only display warnings and errors")
	flag.BoolVarP(&global.verbose, "verbose", "v", false, "display debugging information")
}

func initConfig() {
	var err error
	config, err = cfg.LoadFromFile(global.configFile)
	if err != nil {
		term.Errorf("cannot open or read configuration file: %s", err)
		os.Exit(1)
	}
}

func initLog() {
	switch {
	case global.verbose:
		term.SetLevel(term.LevelDebug)
		term.Debug("displaying debugging information")
	case global.quiet:
		term.SetLevel(term.LevelWarn)
	}
}

func Execute(version, commit, date, builtBy string) {
	setApp(version, commit, date, builtBy)
	if err := rootCmd.Execute(); err != nil {
		term.Error(err)
		os.Exit(1)
	}
}
