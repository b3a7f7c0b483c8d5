package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JackchrisO/Synapse/cmd/client/cmd/types"
	"github.com/JackchrisO/Synapse/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Entrar na conta",
	Long: `Autentica no servidor Synapse.

Após o login o token fica salvo localmente para os próximos comandos.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("aplicação não inicializada")
		}

		fmt.Println("=== Login ===")
		fmt.Println()

		username, err := readLine(bufio.NewReader(os.Stdin), "Nome de usuário: ")
		if err != nil {
			return err
		}

		fmt.Print("Senha: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("erro ao ler a senha: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Login(ctx, username, string(password))
		if err != nil {
			return fmt.Errorf("erro na autenticação: %w", err)
		}

		fmt.Println()
		color.Green("Login realizado com sucesso!")
		if result.Reason != "" {
			fmt.Printf("Acompanhamento: %s\n", result.Reason)
		}
		return nil
	},
}
