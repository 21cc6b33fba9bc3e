package routepath

import "testing"

func TestDetailRoutesEscapeIDs(t *testing.T) {
	t.Parallel()

	if got := Employee("e 1"); got != "/employees/e%201" {
		t.Fatalf("Employee() = %q", got)
	}
	if got := Project("p1"); got != "/projects/p1" {
		t.Fatalf("Project() = %q", got)
	}
	if got := ProjectAssignments("p1"); got != "/projects/p1?section=assignments" {
		t.Fatalf("ProjectAssignments() = %q", got)
	}
}

func TestListRoutes(t *testing.T) {
	t.Parallel()

	if got := EmployeesList(""); got != "/employees?section=list" {
		t.Fatalf("EmployeesList() = %q", got)
	}
	if got := ProjectsList("name desc"); got != "/projects?order_by=name+desc&section=list" {
		t.Fatalf("ProjectsList() = %q", got)
	}
	if got := WithOrder(Employees, "start_date"); got != "/employees?order_by=start_date" {
		t.Fatalf("WithOrder() = %q", got)
	}
	if got := WithOrder(Employees, " "); got != Employees {
		t.Fatalf("WithOrder() blank = %q", got)
	}
}
