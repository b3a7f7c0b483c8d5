package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups the account commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Conta de usuário",
	Long:  `Registro e autenticação de contas.`,
}

func init() {
	AuthCmd.AddCommand(RegisterCmd)
	AuthCmd.AddCommand(LoginCmd)
}
