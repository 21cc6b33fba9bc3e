package staffctl

import (
	"github.com/spf13/cobra"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/listorder"
)

var employeeSortKeys = map[string]func(domain.Employee) string{
	"name":       func(e domain.Employee) string { return e.Name },
	"start_date": func(e domain.Employee) string { return domain.FormDate(e.StartDate) },
}

func newEmployeesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Read employee records",
	}

	var orderBy string
	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Example: `  staffctl employees list
  staffctl employees list --order-by "start_date desc"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ordering, err := listorder.Parse(orderBy)
			if err != nil {
				return err
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			items, err := client.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			listorder.Sort(items, ordering, employeeSortKeys)
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			rows := make([][]string, 0, len(items))
			for _, e := range items {
				status := "active"
				if !e.Employed() {
					status = "former"
				}
				rows = append(rows, []string{e.ID.String(), e.Name, e.Email, domain.JoinList(e.Positions), domain.FormDate(e.StartDate), status})
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "NAME", "EMAIL", "POSITIONS", "START", "STATUS"}, rows, "No employees found.")
		},
	}
	list.Flags().StringVar(&orderBy, "order-by", "", `Ordering such as "name" or "start_date desc"`)

	show := &cobra.Command{
		Use:   "show EMPLOYEE_ID",
		Short: "Show one employee and their projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			id := domain.ID(args[0])
			e, err := client.GetEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}
			assignments, err := client.ListEmployeeAssignments(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"employee": e, "assignments": assignments})
			}
			w := cmd.OutOrStdout()
			writeDetail(w, e.Name, [][2]string{
				{"ID", e.ID.String()},
				{"Email", e.Email},
				{"Positions", domain.JoinList(e.Positions)},
				{"Tech stack", domain.JoinList(e.TechStack)},
				{"Started", domain.FormatDate(e.StartDate)},
				{"Ended", domain.FormatDate(e.EndDate)},
			})
			rows := make([][]string, 0, len(assignments))
			for _, a := range assignments {
				rows = append(rows, []string{a.ProjectID.String(), a.ProjectLabel(), a.Role, domain.FormatMonth(a.AssignedAt)})
			}
			return writeTable(w, []string{"PROJECT", "NAME", "ROLE", "SINCE"}, rows, "Not assigned to any project.")
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
