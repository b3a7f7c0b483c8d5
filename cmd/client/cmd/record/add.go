package record

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JackchrisO/Synapse/cmd/client/cmd/types"
	"github.com/JackchrisO/Synapse/internal/app/client"
)

var (
	addType      string
	addSubtype   string
	addMood      string
	addText      string
	addName      string
	addDose      string
	addFrequency string
	addPurchase  string
	addSpecialty string
	addDate      string
	addTime      string
	addDuration  string
	addIntensity string
	addGroup     string
	addItem      string
)

var AddCmd = &cobra.Command{
	Use:   "add <categoria>",
	Short: "Adicionar registro",
	Long: `Cria um registro na categoria informada.

Exemplos:
  synapse records add diary --mood Bom --text "hoje foi um bom dia"
  synapse records add crisis --type "Crise Focal" --subtype Sensorial
  synapse records add medication --name Lamotrigina --dose 100 --freq 2
  synapse records add meal --group Frutas --item Banana`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("aplicação não inicializada")
		}

		category := args[0]
		body, err := buildBody(category)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.AddRecord(ctx, category, body)
		if err != nil {
			return fmt.Errorf("erro ao criar registro: %w", err)
		}

		color.Green("Registro criado (%s).", result.ID)
		if result.Flagged {
			fmt.Println()
			color.New(color.FgRed, color.Bold).Println(result.Message)
		}
		return nil
	},
}

func buildBody(category string) (any, error) {
	switch category {
	case "crisis":
		return map[string]string{
			"type":      addType,
			"subtype":   addSubtype,
			"duration":  addDuration,
			"intensity": addIntensity,
		}, nil
	case "diary":
		return map[string]string{
			"mood": addMood,
			"text": addText,
		}, nil
	case "medication":
		return map[string]string{
			"name":          addName,
			"dose_mg":       addDose,
			"frequency":     addFrequency,
			"purchase_date": addPurchase,
		}, nil
	case "appointment":
		return map[string]string{
			"name":      addName,
			"specialty": addSpecialty,
			"date":      addDate,
			"time":      addTime,
		}, nil
	case "activity":
		return map[string]string{
			"name":      addName,
			"duration":  addDuration,
			"intensity": addIntensity,
		}, nil
	case "meal":
		return map[string]string{
			"group": addGroup,
			"item":  addItem,
		}, nil
	default:
		return nil, fmt.Errorf("categoria desconhecida: %s", category)
	}
}

func init() {
	AddCmd.Flags().StringVar(&addType, "type", "", "tipo da crise (catálogo)")
	AddCmd.Flags().StringVar(&addSubtype, "subtype", "", "subtipo da crise (catálogo)")
	AddCmd.Flags().StringVar(&addMood, "mood", "", "humor do dia: Bom, Neutro ou Ruim")
	AddCmd.Flags().StringVar(&addText, "text", "", "texto livre do diário")
	AddCmd.Flags().StringVar(&addName, "name", "", "nome (medicamento, médico ou atividade)")
	AddCmd.Flags().StringVar(&addDose, "dose", "", "dose em mg")
	AddCmd.Flags().StringVar(&addFrequency, "freq", "", "doses por dia")
	AddCmd.Flags().StringVar(&addPurchase, "purchase", "", "data da próxima compra")
	AddCmd.Flags().StringVar(&addSpecialty, "specialty", "", "especialidade médica")
	AddCmd.Flags().StringVar(&addDate, "date", "", "data agendada (YYYY-MM-DD)")
	AddCmd.Flags().StringVar(&addTime, "time", "", "hora agendada (HH:MM)")
	AddCmd.Flags().StringVar(&addDuration, "duration", "", "duração")
	AddCmd.Flags().StringVar(&addIntensity, "intensity", "", "intensidade")
	AddCmd.Flags().StringVar(&addGroup, "group", "", "grupo alimentar (catálogo)")
	AddCmd.Flags().StringVar(&addItem, "item", "", "alimento (catálogo)")
}
