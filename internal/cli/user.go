package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmattila/hostadm/internal/sysadm"
)

var (
	addFullName   string
	addPassword   string
	addCreateHome bool

	delRemoveHome bool
	delArchive    bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage local user accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create a local user account",
	Long: `Create a local user account.

Examples:
  hostadm user add bob --full-name "Bob Smith" --password secret
  hostadm user add deploy --no-home`,
	Args: cobra.ExactArgs(1),
	RunE: runUserAdd,
}

var userDelCmd = &cobra.Command{
	Use:   "del <username>",
	Short: "Delete a local user account",
	Long: `Delete a local user account, optionally removing or archiving the
home directory first.

Examples:
  hostadm user del bob
  hostadm user del bob --remove-home
  hostadm user del bob --remove-home --archive`,
	Args: cobra.ExactArgs(1),
	RunE: runUserDel,
}

var userInfoCmd = &cobra.Command{
	Use:   "info <username>",
	Short: "Show account details",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserInfo,
}

func init() {
	userAddCmd.Flags().StringVar(&addFullName, "full-name", "", "full name (GECOS comment)")
	userAddCmd.Flags().StringVar(&addPassword, "password", "", "initial password")
	userAddCmd.Flags().BoolVar(&addCreateHome, "home", true, "create a home directory")

	userDelCmd.Flags().BoolVar(&delRemoveHome, "remove-home", false, "also remove the home directory")
	userDelCmd.Flags().BoolVar(&delArchive, "archive", false, "archive the home directory before deleting")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userDelCmd)
	userCmd.AddCommand(userInfoCmd)
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.AddUser(cmd.Context(), sysadm.AddUserOptions{
		Username:   args[0],
		FullName:   addFullName,
		Password:   addPassword,
		CreateHome: addCreateHome,
	})
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

func runUserDel(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.DeleteUser(cmd.Context(), sysadm.DeleteUserOptions{
		Username:    args[0],
		RemoveHome:  delRemoveHome,
		ArchiveHome: delArchive,
	})
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

func runUserInfo(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	out, err := a.UserInfo(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
