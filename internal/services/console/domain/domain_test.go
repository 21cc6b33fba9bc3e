package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "blank", raw: "", want: []string{}},
		{name: "only separators", raw: " , ,, ", want: []string{}},
		{name: "trims and drops blanks", raw: "A, , b ,A", want: []string{"A", "b", "A"}},
		{name: "single", raw: "Go", want: []string{"Go"}},
		{name: "keeps order", raw: "Go, TS, SQL", want: []string{"Go", "TS", "SQL"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SplitList(tc.raw)
			if got == nil {
				t.Fatal("SplitList returned nil")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitList(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestJoinListRoundTripsThroughSplitList(t *testing.T) {
	t.Parallel()

	values := []string{"Dev", "Lead"}
	if got := SplitList(JoinList(values)); !reflect.DeepEqual(got, values) {
		t.Fatalf("SplitList(JoinList) = %#v, want %#v", got, values)
	}
}

func TestCreateEmployeeInputOmitsEmptyEndDate(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(CreateEmployeeInput{
		Name:      "Ada",
		Email:     "a@x",
		StartDate: "2024-01-01",
		Positions: SplitList("Dev"),
		TechStack: SplitList(""),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(body)
	want := `{"name":"Ada","email":"a@x","start_date":"2024-01-01","positions":["Dev"],"tech_stack":[]}`
	if got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestUpdateProjectInputEncodesListsAsArrays(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(UpdateProjectInput{Name: "Apollo", TechStack: NonNil(nil)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "null") {
		t.Fatalf("body contains null: %s", body)
	}
	if strings.Contains(string(body), "end_date") {
		t.Fatalf("body contains end_date: %s", body)
	}
}

func TestAssignmentLabelsFallBackToIDs(t *testing.T) {
	t.Parallel()

	a := Assignment{EmployeeID: "e1", ProjectID: "p1"}
	if got := a.EmployeeLabel(); got != "Employee e1" {
		t.Fatalf("EmployeeLabel() = %q", got)
	}
	if got := a.ProjectLabel(); got != "Project p1" {
		t.Fatalf("ProjectLabel() = %q", got)
	}
	a.ProjectName = "Apollo"
	if got := a.ProjectLabel(); got != "Apollo" {
		t.Fatalf("ProjectLabel() = %q, want Apollo", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	if got := FormatDate("2024-01-02"); got != "January 2, 2024" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatMonth("2024-03-05T10:00:00Z"); got != "March 2024" {
		t.Fatalf("FormatMonth = %q", got)
	}
	if got := FormatDate("soon"); got != "soon" {
		t.Fatalf("FormatDate(unparseable) = %q, want raw", got)
	}
	if got := FormDate("2024-03-05T10:00:00Z"); got != "2024-03-05" {
		t.Fatalf("FormDate = %q", got)
	}
}

func TestEmployeeEmployed(t *testing.T) {
	t.Parallel()

	if !(Employee{}).Employed() {
		t.Fatal("expected employee without end date to be employed")
	}
	if (Employee{EndDate: "2024-05-01"}).Employed() {
		t.Fatal("expected employee with end date not to be employed")
	}
}
