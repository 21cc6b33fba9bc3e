package staffctl

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

func newAssignCommand(opts *options) *cobra.Command {
	var employeeID, projectID, role string
	cmd := &cobra.Command{
		Use:     "assign",
		Short:   "Assign an employee to a project",
		Example: `  staffctl assign --employee e1 --project p1 --role "Tech Lead"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := workflow.Form{TargetID: strings.TrimSpace(projectID), Role: strings.TrimSpace(role)}
			if errs := workflow.Validate(workflow.KindAssignEmployeeToProject, form); len(errs) > 0 {
				return fieldErrors(errs)
			}
			if strings.TrimSpace(employeeID) == "" {
				return errors.New("--employee is required")
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			in := workflow.AssignmentPayload(domain.ID(strings.TrimSpace(employeeID)), domain.ID(form.TargetID), form, opts.now())
			if err := client.Assign(cmd.Context(), in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s assigned %s to %s as %s\n", okStyle.Render("✓"), in.EmployeeID, in.ProjectID, in.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee id")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&role, "role", "", "Role on the project")
	return cmd
}

func newUnassignCommand(opts *options) *cobra.Command {
	var employeeID, projectID string
	cmd := &cobra.Command{
		Use:   "unassign",
		Short: "Remove an employee from a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := domain.Assignment{
				EmployeeID: domain.ID(strings.TrimSpace(employeeID)),
				ProjectID:  domain.ID(strings.TrimSpace(projectID)),
			}
			if a.EmployeeID.IsZero() || a.ProjectID.IsZero() {
				return errors.New("--employee and --project are required")
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			if err := client.Unassign(cmd.Context(), workflow.UnassignPayload(a)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s from %s\n", okStyle.Render("✓"), a.EmployeeID, a.ProjectID)
			return nil
		},
	}
	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee id")
	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	return cmd
}

func fieldErrors(errs workflow.FieldErrors) error {
	flags := map[string]string{"target_id": "--project", "role": "--role"}
	var parts []string
	for field, key := range errs {
		name := flags[field]
		if name == "" {
			name = field
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.TrimPrefix(key, "validation.")))
	}
	sort.Strings(parts)
	return errors.New(strings.Join(parts, "; "))
}
