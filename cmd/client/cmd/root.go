package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	authCmd "github.com/JackchrisO/Synapse/cmd/client/cmd/auth"
	recordCmd "github.com/JackchrisO/Synapse/cmd/client/cmd/record"
	summaryCmd "github.com/JackchrisO/Synapse/cmd/client/cmd/summary"
	"github.com/JackchrisO/Synapse/cmd/client/cmd/types"
	"github.com/JackchrisO/Synapse/internal/app/client"
	"github.com/JackchrisO/Synapse/internal/app/client/config"
	"github.com/JackchrisO/Synapse/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "synapse",
	Short: "Synapse - acompanhamento de saúde no terminal",
	Long: `Synapse é o cliente de linha de comando do diário de saúde:
registro de crises, humor, medicamentos, consultas, atividades e
alimentação, com resumo dos últimos dias.

O token de sessão fica salvo localmente após o login.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	viper.AutomaticEnv()

	cfg = config.MustLoad()
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("erro ao inicializar o cliente: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "endereço do servidor Synapse")

	rootCmd.AddCommand(authCmd.AuthCmd)
	rootCmd.AddCommand(recordCmd.RecordsCmd)
	rootCmd.AddCommand(summaryCmd.SummaryCmd)
}
