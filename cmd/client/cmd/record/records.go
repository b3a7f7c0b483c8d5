package record

import (
	"github.com/spf13/cobra"
)

// RecordsCmd groups the record commands.
var RecordsCmd = &cobra.Command{
	Use:     "records",
	Aliases: []string{"record"},
	Short:   "Registros de saúde",
	Long: `Criação e consulta de registros por categoria.

Categorias: crisis, diary, medication, appointment, activity, meal.`,
}

func init() {
	RecordsCmd.AddCommand(AddCmd)
	RecordsCmd.AddCommand(ListCmd)
}
