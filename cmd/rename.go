package cmd

import (
	"errors"

	"github.com/creativeprojects/folders/term"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <account> <folder> <new name>",
	Short: "Rename a folder on an account",
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing account name")
	} else if len(args) < 3 {
		return errors.New("missing folder names (current and new)")
	}
	backend, service, err := openAccount(args[0])
	if err != nil {
		return err
	}
	defer backend.Close()

	err = service.RenameFolder(args[1], args[2])
	if err != nil {
		return err
	}
	term.Infof("folder %q renamed to %q", args[1], args[2])
	return nil
}
