package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

const (
	employeeKeyPrefix = "EMP#"
	projectKeyPrefix  = "PROJ#"
)

type wireEmployee struct {
	ID        string   `json:"id"`
	PK        string   `json:"PK"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Positions []string `json:"positions"`
	TechStack []string `json:"tech_stack"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

func (w wireEmployee) toDomain() domain.Employee {
	return domain.Employee{
		ID:        domain.ID(keyID(employeeKeyPrefix, w.ID, w.PK)),
		Name:      w.Name,
		Email:     w.Email,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		Positions: domain.NonNil(w.Positions),
		TechStack: domain.NonNil(w.TechStack),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type wireProject struct {
	ID          string   `json:"id"`
	PK          string   `json:"PK"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	TechStack   []string `json:"tech_stack"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func (w wireProject) toDomain() domain.Project {
	return domain.Project{
		ID:          domain.ID(keyID(projectKeyPrefix, w.ID, w.PK)),
		Name:        w.Name,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		TechStack:   domain.NonNil(w.TechStack),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// wireAssignment accepts both the single-table key layout (PK/SK/GSI1PK/GSI1SK)
// and the flattened shape with explicit ids and names.
type wireAssignment struct {
	PK           string `json:"PK"`
	SK           string `json:"SK"`
	GSI1PK       string `json:"GSI1PK"`
	GSI1SK       string `json:"GSI1SK"`
	EmployeeID   string `json:"employeeId"`
	ProjectID    string `json:"projectId"`
	EmployeeName string `json:"employeeName"`
	ProjectName  string `json:"projectName"`
	Role         string `json:"role"`
	AssignedAt   string `json:"assignedAt"`
	AssignedAtV2 string `json:"assigned_at"`
	AssignedDate string `json:"assigned_date"`
}

func (w wireAssignment) toDomain() domain.Assignment {
	return domain.Assignment{
		EmployeeID:   domain.ID(keyID(employeeKeyPrefix, w.EmployeeID, w.PK, w.GSI1SK, w.SK)),
		ProjectID:    domain.ID(keyID(projectKeyPrefix, w.ProjectID, w.GSI1PK, w.SK, w.PK)),
		EmployeeName: w.EmployeeName,
		ProjectName:  w.ProjectName,
		Role:         w.Role,
		AssignedAt:   firstNonEmpty(w.AssignedAt, w.AssignedAtV2, w.AssignedDate),
	}
}

// keyID resolves an identifier from an explicit id or from storage keys
// carrying prefix. Keys with a different prefix are ignored.
func keyID(prefix, explicit string, keys ...string) string {
	if id := strings.TrimSpace(explicit); id != "" {
		return strings.TrimPrefix(id, prefix)
	}
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if strings.HasPrefix(key, prefix) {
			return strings.TrimPrefix(key, prefix)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// isEnvelope reports whether body is an object shaped {"statusCode", "body"}.
func isEnvelope(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return false
	}
	_, hasStatus := fields["statusCode"]
	_, hasBody := fields["body"]
	return hasStatus && hasBody
}
