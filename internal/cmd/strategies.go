package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pthm/scrutey/internal/strategy"
	"github.com/pthm/scrutey/internal/ui"
	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the detection strategies",
	Long: `List every detection strategy in registry order.

Registry order breaks ties between equally confident strategies, so a
specialised strategy is listed ahead of the one it is a child of. When
nothing matches, every score is zero and the first strategy listed names
the result, which is why unrecognised input is labelled "JSON Schema" and
rendered as is.

Examples:
  scrutey strategies
  scrutey --disable MARKDOWN_ONLY strategies`,
	Args: cobra.NoArgs,
	RunE: runStrategies,
}

func init() {
	RootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	u := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), "text", cfg.Color)
	registry, err := enabledRegistry(cfg.Disable)
	if err != nil {
		return err
	}
	return printStrategies(cmd.OutOrStdout(), u, registry)
}

func printStrategies(w io.Writer, u *ui.UI, registry *strategy.Registry) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(u.Styles.Separator).
		Headers("#", "ID", "CHILD OF", "FAMILY")

	for i, s := range registry.Strategies() {
		parent, ok := s.ChildOf()
		if !ok {
			parent = "-"
		}
		t.Row(fmt.Sprint(i+1), s.ID(), parent, s.Family().String())
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
