package summary

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/JackchrisO/Synapse/cmd/client/cmd/types"
	"github.com/JackchrisO/Synapse/internal/app/client"
)

var (
	summaryDays int
	summaryUser string
)

// Category display order and labels for the summary table.
var categories = []struct {
	key   string
	label string
}{
	{"crisis", "Crises"},
	{"diary", "Diário"},
	{"medication", "Medicamentos"},
	{"appointment", "Consultas"},
	{"activity", "Atividades"},
	{"meal", "Alimentação"},
}

var SummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Resumo por categoria",
	Long:  `Conta os registros de cada categoria dentro da janela de dias informada.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("aplicação não inicializada")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Summary(ctx, summaryDays, summaryUser)
		if err != nil {
			return fmt.Errorf("erro ao obter resumo: %w", err)
		}

		fmt.Printf("Resumo de %s — últimos %d dias (%s a %s)\n\n",
			result.Username, result.WindowDays, result.From, result.To)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%d\n", c.label, result.Counts[c.key])
		}
		return w.Flush()
	},
}

func init() {
	SummaryCmd.Flags().IntVar(&summaryDays, "days", 7, "tamanho da janela em dias")
	SummaryCmd.Flags().StringVar(&summaryUser, "user", "", "conta a resumir (somente sessão bootstrap)")
}
