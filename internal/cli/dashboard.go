package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/SscSPs/field_ops_app/internal/core/query"
	"github.com/SscSPs/field_ops_app/internal/dto"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type dashboardOptions struct {
	criteria dto.CriteriaRequest
	script   string
}

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	var dopts dashboardOptions

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the approvals dashboard",
		Long: `Shows every log of the session in one table, time cards first, then
equipment, then materials. A JSON-lines script (see 'fieldops session')
can be replayed first with --script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts, dopts)
		},
	}

	cmd.Flags().StringVar(&dopts.criteria.Name, "name", "", "Filter by employee or equipment name")
	cmd.Flags().StringVar(&dopts.criteria.Category, "category", "", "Filter by job name or material category")
	cmd.Flags().StringVar(&dopts.criteria.Date, "date", "", "Filter by date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dopts.criteria.Status, "status", "", "Filter by status (Pending or Approved)")
	cmd.Flags().StringVar(&dopts.script, "script", "", "Replay a JSON-lines command file before rendering")
	return cmd
}

func runDashboard(cmd *cobra.Command, opts *rootOptions, dopts dashboardOptions) error {
	ctx := cmd.Context()

	criteria, err := dopts.criteria.ToCriteria()
	if err != nil {
		return err
	}

	session, err := NewSession(ctx, opts.seed)
	if err != nil {
		return err
	}
	defer session.Close()

	if dopts.script != "" {
		f, err := os.Open(dopts.script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		if err := session.Run(ctx, f, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	dash := session.Dashboard()
	if err := dash.SetCriteria(criteria); err != nil {
		return err
	}

	renderDashboard(cmd.OutOrStdout(), newStyles(!opts.noColor), dash.Logs(), dash.Summary())
	return nil
}

var dashboardHeaders = []string{"TYPE", "NAME / CATEGORY", "DETAILS", "HOURS / QTY", "DATE", "NOTES", "STATUS", "ID"}

func renderDashboard(w io.Writer, st styles, logs []domain.Log, summary query.Summary) {
	fmt.Fprintln(w, st.brand.Render("Approvals Dashboard"))

	if len(logs) == 0 {
		fmt.Fprintln(w, st.hint.Render("No logs match the current filters."))
		fmt.Fprintln(w, renderSummary(st, summary))
		return
	}

	rows := dto.ToLogRows(logs)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Type, r.Primary, r.Secondary, r.Tertiary, r.Date, r.Notes, r.Status, r.ID}
	}

	statusCol := 6
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers(dashboardHeaders...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			if col == statusCol && row >= 0 && row < len(rows) {
				if rows[row].Status == string(domain.Approved) {
					return st.approved
				}
				return st.pending
			}
			return st.cell
		})

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, renderSummary(st, summary))
}

func renderSummary(st styles, s query.Summary) string {
	parts := []string{
		st.label.Render("Total:") + " " + st.value.Render(fmt.Sprint(s.Total)),
		st.label.Render("Pending:") + " " + st.pending.UnsetPadding().Render(fmt.Sprint(s.Pending())),
		st.label.Render("Approved:") + " " + st.approved.UnsetPadding().Render(fmt.Sprint(s.ByStatus[domain.Approved])),
		st.label.Render("Hours:") + " " + st.value.Render(fmt.Sprintf("%s reg / %s OT", s.RegularHours, s.OvertimeHours)),
		st.label.Render("Run:") + " " + st.value.Render(s.RunHours.String()+"hrs"),
	}

	units := make([]string, 0, len(s.Quantities))
	for unit := range s.Quantities {
		units = append(units, string(unit))
	}
	sort.Strings(units)
	for _, unit := range units {
		u := domain.UnitOfMeasure(unit)
		parts = append(parts, st.label.Render("Delivered:")+" "+st.value.Render(s.Quantities[u].String()+" "+u.Label()))
	}
	return strings.Join(parts, "  ")
}
