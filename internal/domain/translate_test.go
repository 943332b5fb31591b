package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/semanticos/semantic/internal/domain"
)

func naturalStore() domain.MappingStore {
	return domain.FromSelections("fish", "natural", "natural", "ignore")
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		args  []string
		want  domain.ExecutionPlan
	}{
		{
			name:  "path argument substituted",
			token: "goto",
			args:  []string{"/apps"},
			want:  domain.ExecutionPlan{Program: "cd", Args: []string{"/usr/bin"}},
		},
		{
			name:  "unmapped argument passes through",
			token: "list",
			args:  []string{"/not/mapped"},
			want:  domain.ExecutionPlan{Program: "ls", Args: []string{"-la", "/not/mapped"}},
		},
		{
			name:  "fixed args precede trailing args",
			token: "install",
			args:  []string{"ripgrep"},
			want:  domain.ExecutionPlan{Program: "sudo", Args: []string{"pacman", "-S", "ripgrep"}},
		},
		{
			name:  "no trailing args",
			token: "back",
			args:  nil,
			want:  domain.ExecutionPlan{Program: "cd", Args: []string{".."}},
		},
		{
			name:  "argument order preserved across mixed substitution",
			token: "copy",
			args:  []string{"/apps", "dest", "/logs"},
			want:  domain.ExecutionPlan{Program: "cp", Args: []string{"-r", "/usr/bin", "dest", "/var/log"}},
		},
		{
			name:  "substitution is whole-argument only",
			token: "goto",
			args:  []string{"/apps/sub"},
			want:  domain.ExecutionPlan{Program: "cd", Args: []string{"/apps/sub"}},
		},
	}

	store := naturalStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.Translate(store, tt.token, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	store := naturalStore()

	first, err := domain.Translate(store, "goto", []string{"/apps"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.Translate(store, "goto", []string{"/apps"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same inputs produced different plans (-first +second):\n%s", diff)
	}
}

func TestTranslate_UnknownCommand(t *testing.T) {
	_, err := domain.Translate(naturalStore(), "frobnicate", nil)

	var unknown *domain.UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCommandError, got %v", err)
	}
	if unknown.Token != "frobnicate" {
		t.Errorf("error names token %q, want frobnicate", unknown.Token)
	}
}

func TestTranslate_MalformedMapping(t *testing.T) {
	store := naturalStore()
	store.Commands = map[string]string{"ghost": "   "}

	_, err := domain.Translate(store, "ghost", nil)

	var malformed *domain.MalformedMappingError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedMappingError, got %v", err)
	}
	if malformed.Token != "ghost" {
		t.Errorf("error names token %q, want ghost", malformed.Token)
	}
}

// TestTranslate_DoesNotMutateStore guards the read-only contract.
func TestTranslate_DoesNotMutateStore(t *testing.T) {
	store := naturalStore()
	before := domain.FromSelections("fish", "natural", "natural", "ignore")

	if _, err := domain.Translate(store, "goto", []string{"/apps", "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(before, store); diff != "" {
		t.Errorf("store mutated by Translate (-before +after):\n%s", diff)
	}
}
