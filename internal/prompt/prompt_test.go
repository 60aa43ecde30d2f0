package prompt

import (
	"strings"
	"testing"
)

func TestBuildIsDeterministic(t *testing.T) {
	first := Build("AI", "Growth", "No")
	second := Build("AI", "Growth", "No")
	if first != second {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestBuildEmbedsAnswers(t *testing.T) {
	p := Build("Cloud and AI", "Wants architect track", "AWS SAA in progress")
	for _, want := range []string{
		"Areas of interest: Cloud and AI",
		"Motivation: Wants architect track",
		"Currently in training: AWS SAA in progress",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildStatesConstraints(t *testing.T) {
	p := Build("-", "-", "-")
	for _, want := range []string{
		"do not greet",
		"first person",
		"only the middle paragraph",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing constraint %q", want)
		}
	}
}

func TestBuildDiffersForDifferentInputs(t *testing.T) {
	if Build("AI", "Growth", "No") == Build("AI", "Growth", "Yes") {
		t.Fatal("different inputs produced identical prompts")
	}
}
