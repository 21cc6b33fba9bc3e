package staffctl

import (
	"github.com/spf13/cobra"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/listorder"
)

var projectSortKeys = map[string]func(domain.Project) string{
	"name":       func(p domain.Project) string { return p.Name },
	"start_date": func(p domain.Project) string { return domain.FormDate(p.StartDate) },
}

func newProjectsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Read project records",
	}

	var orderBy string
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ordering, err := listorder.Parse(orderBy)
			if err != nil {
				return err
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			items, err := client.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			listorder.Sort(items, ordering, projectSortKeys)
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{p.ID.String(), p.Name, domain.JoinList(p.TechStack), domain.FormDate(p.StartDate), domain.FormDate(p.EndDate)})
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "NAME", "TECH STACK", "START", "END"}, rows, "No projects found.")
		},
	}
	list.Flags().StringVar(&orderBy, "order-by", "", `Ordering such as "name desc" or "start_date"`)

	show := &cobra.Command{
		Use:   "show PROJECT_ID",
		Short: "Show one project and its team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			id := domain.ID(args[0])
			p, err := client.GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			team, err := client.ListProjectAssignments(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"project": p, "assignments": team})
			}
			w := cmd.OutOrStdout()
			writeDetail(w, p.Name, [][2]string{
				{"ID", p.ID.String()},
				{"Description", p.Description},
				{"Tech stack", domain.JoinList(p.TechStack)},
				{"Start", domain.FormatDate(p.StartDate)},
				{"End", domain.FormatDate(p.EndDate)},
			})
			rows := make([][]string, 0, len(team))
			for _, a := range team {
				rows = append(rows, []string{a.EmployeeID.String(), a.EmployeeLabel(), a.Role, domain.FormatMonth(a.AssignedAt)})
			}
			return writeTable(w, []string{"EMPLOYEE", "NAME", "ROLE", "SINCE"}, rows, "No employees assigned.")
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
