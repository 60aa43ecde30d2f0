package columns

import (
	"errors"
	"testing"
)

var surveyHeaders = []string{
	"ID",
	"Full Name",
	"Work Email",
	"Career Coach Email",
	"Which areas of upskilling are you most interested in?",
	"Are there any specific topics you would like to focus on in future training programs?",
	"Any certificate that you have in mind for the next period?",
	"Send Email",
}

func TestResolve(t *testing.T) {
	m, err := Resolve(surveyHeaders, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != "ID" {
		t.Errorf("id = %q", m.ID)
	}
	if m.Name != "Full Name" {
		t.Errorf("name = %q", m.Name)
	}
	if m.Email != "Work Email" {
		t.Errorf("email = %q", m.Email)
	}
	if m.CoachEmail != "Career Coach Email" {
		t.Errorf("coach = %q", m.CoachEmail)
	}
	if m.Interest != surveyHeaders[4] {
		t.Errorf("interest = %q", m.Interest)
	}
	if m.Motivation != surveyHeaders[5] {
		t.Errorf("motivation = %q", m.Motivation)
	}
	if m.Enrollment != surveyHeaders[6] {
		t.Errorf("enrollment = %q", m.Enrollment)
	}
	if m.SentFlag != "Send Email" {
		t.Errorf("sent flag = %q", m.SentFlag)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	first, err := Resolve(surveyHeaders, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve(surveyHeaders, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("resolution differs between runs: %+v vs %+v", first, second)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Both "Work Email" and "Career Coach Email" contain "email"; the first
	// column in table order must win for the email role.
	m, err := Resolve(surveyHeaders, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if m.Email == m.CoachEmail {
		t.Fatalf("email and coach resolved to the same column %q", m.Email)
	}
}

func TestResolveMissingRole(t *testing.T) {
	headers := []string{"ID", "Full Name", "Work Email"}
	_, err := Resolve(headers, DefaultKeywords())
	if err == nil {
		t.Fatal("expected resolution failure")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if notFound.Role != RoleCoachEmail {
		t.Fatalf("failed role = %q", notFound.Role)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	headers := []string{"id", "FULL NAME", "WORK EMAIL", "CAREER COACH EMAIL",
		"UPSKILLING", "FUTURE TRAINING PROGRAMS", "NEXT PERIOD", "SEND EMAIL"}
	if _, err := Resolve(headers, DefaultKeywords()); err != nil {
		t.Fatal(err)
	}
}

func TestResolveNormalizesNonBreakingSpace(t *testing.T) {
	// The coach header uses non-breaking spaces, as xlsx exports do.
	headers := []string{"ID", "Full Name", "Work Email", "Career\u00a0Coach\u00a0Email",
		"Upskilling", "Future training programs", "Next period", "Send Email"}
	m, err := Resolve(headers, DefaultKeywords())
	if err != nil {
		t.Fatal(err)
	}
	if m.CoachEmail != headers[3] {
		t.Fatalf("coach = %q", m.CoachEmail)
	}
}
