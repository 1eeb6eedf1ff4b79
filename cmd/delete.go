package cmd

import (
	"errors"

	"github.com/creativeprojects/folders/term"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <account> <folder>",
	Short: "Delete a folder from an account",
	Long:  "\nDelete a folder from an account. The default folders (INBOX, Drafts, Sent, Trash, Junk, Archive) cannot be deleted.",
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing account name")
	} else if len(args) < 2 {
		return errors.New("missing folder name")
	}
	backend, service, err := openAccount(args[0])
	if err != nil {
		return err
	}
	defer backend.Close()

	err = service.DeleteFolder(args[1])
	if err != nil {
		return err
	}
	term.Infof("folder %q deleted", args[1])
	return nil
}
