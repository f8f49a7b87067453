package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/accphys/madview/internal/match"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List quantities with their engine and display units",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			exitCode = ExitConfigError
			return err
		}

		doc := cfg.Document
		quantities := make([]string, 0, len(doc.MadxUnits))
		for q := range doc.MadxUnits {
			quantities = append(quantities, q)
		}
		sort.Strings(quantities)

		tbl := newTable("QUANTITY", "ENGINE UNIT", "DISPLAY UNIT")
		for _, q := range quantities {
			display := ""
			if spec, ok := doc.LineView.Unit[q]; ok {
				display = spec.String()
			}
			tbl.Row(q, doc.MadxUnits[q].String(), display)
		}

		fmt.Fprintln(os.Stdout, tbl)
		return nil
	},
}

var knobsCmd = &cobra.Command{
	Use:   "knobs <quantity>",
	Short: "List the element parameters a matching run may adjust for a quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			exitCode = ExitConfigError
			return err
		}

		quantity := args[0]
		tbl := match.NewTable(cfg.Document.Matching)

		categories := tbl.Categories(quantity)
		if len(categories) == 0 {
			exitCode = ExitConfigError
			return fmt.Errorf("quantity %q is not matchable; known quantities: %s",
				quantity, strings.Join(tbl.Quantities(), ", "))
		}

		out := newTable("ELEMENT CATEGORY", "PARAMETERS")
		for _, category := range categories {
			out.Row(category, strings.Join(tbl.Knobs(quantity, category), ", "))
		}

		fmt.Fprintln(os.Stdout, out)
		return nil
	},
}
