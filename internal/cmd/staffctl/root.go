// Package staffctl is the operator CLI for the staffing backend. It reads
// records and edits assignments without going through the console.
package staffctl

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	entrypoint "github.com/louisbranch/staffdesk/internal/platform/cmd"
	"github.com/louisbranch/staffdesk/internal/platform/timeouts"
	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Client is the backend surface staffctl uses.
type Client interface {
	ListEmployees(context.Context) ([]domain.Employee, error)
	GetEmployee(context.Context, domain.ID) (domain.Employee, error)
	ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
	ListProjects(context.Context) ([]domain.Project, error)
	GetProject(context.Context, domain.ID) (domain.Project, error)
	ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
	Assign(context.Context, domain.AssignmentInput) error
	Unassign(context.Context, domain.UnassignInput) error
}

// ClientFactory builds a Client for a backend base URL.
type ClientFactory func(baseURL string, timeout time.Duration) (Client, error)

// Config holds staffctl defaults read from the environment.
type Config struct {
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	APITimeout time.Duration `env:"API_TIMEOUT"`
}

type options struct {
	baseURL string
	timeout time.Duration
	json    bool
	now     func() time.Time
	factory ClientFactory
}

func (o *options) client() (Client, error) {
	return o.factory(o.baseURL, o.timeout)
}

// DefaultClientFactory dials the real backend.
func DefaultClientFactory(baseURL string, timeout time.Duration) (Client, error) {
	return api.New(baseURL, api.WithTimeout(timeout))
}

// NewRootCommand builds the staffctl command tree. A nil factory uses
// DefaultClientFactory.
func NewRootCommand(cfg Config, factory ClientFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultClientFactory
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = timeouts.APIRequest
	}
	opts := &options{now: time.Now, factory: factory}

	root := &cobra.Command{
		Use:           "staffctl",
		Short:         "Inspect employees, projects, and assignments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "api-base-url", cfg.APIBaseURL, "Staffing backend base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.APITimeout, "Per-request backend timeout")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of a table")

	root.AddCommand(
		newEmployeesCommand(opts),
		newProjectsCommand(opts),
		newAssignCommand(opts),
		newUnassignCommand(opts),
	)
	return root
}

// Execute parses env defaults, runs args, and reports errors on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return err
	}
	root := NewRootCommand(cfg, nil)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "staffctl: %v\n", err)
		return err
	}
	return nil
}
