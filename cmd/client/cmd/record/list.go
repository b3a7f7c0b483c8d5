package record

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/JackchrisO/Synapse/cmd/client/cmd/types"
	"github.com/JackchrisO/Synapse/internal/app/client"
)

var (
	listFormat string
	listUser   string
)

var ListCmd = &cobra.Command{
	Use:   "list <categoria>",
	Short: "Listar registros",
	Long:  `Lista os registros da categoria informada, na ordem em que foram criados.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("aplicação não inicializada")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		records, err := app.ListRecords(ctx, args[0], listUser)
		if err != nil {
			return fmt.Errorf("erro ao listar registros: %w", err)
		}

		if listFormat == "json" {
			return printJSON(records)
		}
		return printTable(records)
	},
}

func printJSON(records []client.RecordView) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printTable(records []client.RecordView) error {
	if len(records) == 0 {
		fmt.Println("Nenhum registro encontrado")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATA\tHORA\tDETALHES")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rec.Date, rec.Time, formatFields(rec.Fields))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d\n", len(records))
	return nil
}

func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func init() {
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "formato de saída: table ou json")
	ListCmd.Flags().StringVar(&listUser, "user", "", "conta a listar (somente sessão bootstrap)")
}
