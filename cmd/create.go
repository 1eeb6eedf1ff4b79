package cmd

import (
	"errors"

	"github.com/creativeprojects/folders/term"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <account> <folder>",
	Short: "Create a new folder on an account",
	RunE:  runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	err = service.CreateFolder(args[1])
	if err != nil {
		return err
	}
	term.Infof("folder %q created", args[1])
	return nil
}
