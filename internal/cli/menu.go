package cli

import (
	"github.com/spf13/cobra"

	"github.com/pmattila/hostadm/internal/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long:  `Open the interactive administration menu. This is also what running hostadm with no arguments does.`,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return tui.Run(a)
}
