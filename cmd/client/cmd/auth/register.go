package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JackchrisO/Synapse/cmd/client/cmd/types"
	"github.com/JackchrisO/Synapse/internal/app/client"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Registrar nova conta",
	Long: `Cria uma conta no servidor Synapse.

O motivo de uso deve ser um de: Epilepsia, Cuidado psicológico, Ambos.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("aplicação não inicializada")
		}

		reader := bufio.NewReader(os.Stdin)

		fmt.Println("=== Registro ===")
		fmt.Println()

		username, err := readLine(reader, "Nome de usuário: ")
		if err != nil {
			return err
		}

		fmt.Print("Senha: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("erro ao ler a senha: %w", err)
		}
		fmt.Println()

		age, err := readLine(reader, "Idade: ")
		if err != nil {
			return err
		}

		sex, err := readLine(reader, "Sexo (opcional): ")
		if err != nil {
			return err
		}

		reason, err := readLine(reader, "Motivo (Epilepsia / Cuidado psicológico / Ambos): ")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		err = app.Register(ctx, client.RegisterRequest{
			Username: username,
			Password: string(password),
			Age:      age,
			Sex:      sex,
			Reason:   reason,
		})
		if err != nil {
			return fmt.Errorf("erro no registro: %w", err)
		}

		fmt.Println()
		color.Green("Conta criada com sucesso! Use 'synapse auth login' para entrar.")
		return nil
	},
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("erro de leitura: %w", err)
	}
	return strings.TrimSpace(line), nil
}
