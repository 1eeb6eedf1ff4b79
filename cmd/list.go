package cmd

import (
	"errors"

	"github.com/creativeprojects/folders/term"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <account>",
	Short: "Display the list of folders of an account",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing account name")
	}
	backend, service, err := openAccount(args[0])
	if err != nil {
		return err
	}
	defer backend.Close()

	folders, err := service.ListFolders()
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		term.Warn("no folder on this account")
		return nil
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Folder"},
	})
	for _, name := range folders {
		table.Data = append(table.Data, []string{name})
	}
	err = table.Render()
	if err != nil {
		return err
	}
	term.Infof("%d folders", len(folders))
	return nil
}
