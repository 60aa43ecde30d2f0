package columns

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Role names a semantic field of the survey table.
type Role string

const (
	RoleID         Role = "id"
	RoleName       Role = "name"
	RoleEmail      Role = "email"
	RoleCoachEmail Role = "coach_email"
	RoleInterest   Role = "interest"
	RoleMotivation Role = "motivation"
	RoleEnrollment Role = "enrollment_status"
	RoleSentFlag   Role = "sent_flag"
)

// resolveOrder fixes the order roles are resolved in so failures are
// reported deterministically.
var resolveOrder = []Role{
	RoleID,
	RoleName,
	RoleEmail,
	RoleCoachEmail,
	RoleInterest,
	RoleMotivation,
	RoleEnrollment,
	RoleSentFlag,
}

// Keywords lists the keyword aliases accepted for each role.
type Keywords map[Role][]string

// DefaultKeywords returns the alias table for the engagement survey export.
// Alias choice matters: "email" alone must hit the recipient address before
// the coach column, so the recipient email column has to precede it in the
// export, and the coach role carries more specific aliases.
func DefaultKeywords() Keywords {
	return Keywords{
		RoleID:         {"id"},
		RoleName:       {"name"},
		RoleEmail:      {"email"},
		RoleCoachEmail: {"career coach", "coach email"},
		RoleInterest:   {"upskilling"},
		RoleMotivation: {"future training programs"},
		RoleEnrollment: {"next period", "enrollment"},
		RoleSentFlag:   {"send email", "sent"},
	}
}

// Map holds the resolved column name for every semantic role.
type Map struct {
	ID         string
	Name       string
	Email      string
	CoachEmail string
	Interest   string
	Motivation string
	Enrollment string
	SentFlag   string
}

// NotFoundError reports a role that no column satisfies. The orchestrator
// treats this as fatal before any side effect occurs.
type NotFoundError struct {
	Role     Role
	Keywords []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no column matches role %q (keywords %s)", e.Role, strings.Join(e.Keywords, ", "))
}

// Resolve builds a Map from the table headers. For each role the first column
// in table order whose normalized name contains one of the role's aliases
// wins.
func Resolve(headers []string, keywords Keywords) (Map, error) {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = normalizeHeader(header)
	}

	resolved := make(map[Role]string, len(resolveOrder))
	for _, role := range resolveOrder {
		aliases := keywords[role]
		column, ok := match(headers, normalized, aliases)
		if !ok {
			return Map{}, &NotFoundError{Role: role, Keywords: aliases}
		}
		resolved[role] = column
	}

	return Map{
		ID:         resolved[RoleID],
		Name:       resolved[RoleName],
		Email:      resolved[RoleEmail],
		CoachEmail: resolved[RoleCoachEmail],
		Interest:   resolved[RoleInterest],
		Motivation: resolved[RoleMotivation],
		Enrollment: resolved[RoleEnrollment],
		SentFlag:   resolved[RoleSentFlag],
	}, nil
}

func match(headers, normalized []string, aliases []string) (string, bool) {
	for i, header := range normalized {
		for _, alias := range aliases {
			if alias == "" {
				continue
			}
			if strings.Contains(header, normalizeHeader(alias)) {
				return headers[i], true
			}
		}
	}
	return "", false
}

// normalizeHeader lowers the header and folds compatibility characters (NBSP,
// typographic quotes) so keyword matching survives spreadsheet exports.
func normalizeHeader(header string) string {
	folded := norm.NFKC.String(header)
	return strings.ToLower(strings.TrimSpace(folded))
}
