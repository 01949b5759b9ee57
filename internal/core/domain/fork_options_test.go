package domain_test

import (
	"testing"

	"go.trai.ch/forge/internal/core/domain"
)

func TestForkOptions_IsCompatibleWith(t *testing.T) {
	worker := domain.ForkOptions{
		ToolPaths:   []string{"/opt/go/bin", "/opt/node/bin"},
		Env:         []string{"CI=true", "LANG=C"},
		SharedPaths: []string{"/var/cache/deps"},
	}

	tests := []struct {
		name       string
		required   domain.ForkOptions
		compatible bool
	}{
		{
			name:       "empty requirements always match",
			required:   domain.ForkOptions{},
			compatible: true,
		},
		{
			name: "subset along every dimension matches",
			required: domain.ForkOptions{
				ToolPaths: []string{"/opt/go/bin"},
				Env:       []string{"CI=true"},
			},
			compatible: true,
		},
		{
			name:       "identical options match",
			required:   worker,
			compatible: true,
		},
		{
			name: "missing tool path rejects",
			required: domain.ForkOptions{
				ToolPaths: []string{"/opt/rust/bin"},
			},
			compatible: false,
		},
		{
			name: "missing env entry rejects",
			required: domain.ForkOptions{
				Env: []string{"CI=false"},
			},
			compatible: false,
		},
		{
			name: "missing shared path rejects",
			required: domain.ForkOptions{
				SharedPaths: []string{"/var/cache/other"},
			},
			compatible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := worker.IsCompatibleWith(tt.required); got != tt.compatible {
				t.Errorf("IsCompatibleWith() = %v, want %v", got, tt.compatible)
			}
		})
	}
}

func TestForkOptions_IsCompatibleWith_NotSymmetric(t *testing.T) {
	narrow := domain.ForkOptions{}
	wide := domain.ForkOptions{ToolPaths: []string{"/opt/go/bin"}}

	if !wide.IsCompatibleWith(narrow) {
		t.Error("expected wide options to serve narrow requirements")
	}
	if narrow.IsCompatibleWith(wide) {
		t.Error("expected narrow options to reject wide requirements")
	}
}

func TestForkOptions_EnvID(t *testing.T) {
	a := domain.ForkOptions{
		ToolPaths: []string{"/opt/go/bin", "/opt/node/bin"},
		Env:       []string{"CI=true"},
	}
	// Same options, different ordering within a dimension.
	b := domain.ForkOptions{
		ToolPaths: []string{"/opt/node/bin", "/opt/go/bin"},
		Env:       []string{"CI=true"},
	}
	c := domain.ForkOptions{
		ToolPaths: []string{"/opt/go/bin"},
	}

	if a.EnvID() != b.EnvID() {
		t.Errorf("expected ordering-insensitive fingerprints, got %s and %s", a.EnvID(), b.EnvID())
	}
	if a.EnvID() == c.EnvID() {
		t.Errorf("expected different options to produce different fingerprints, both %s", a.EnvID())
	}

	// Entries must not bleed across dimensions.
	d := domain.ForkOptions{ToolPaths: []string{"/opt/go/bin"}}
	e := domain.ForkOptions{Env: []string{"/opt/go/bin"}}
	if d.EnvID() == e.EnvID() {
		t.Errorf("expected dimension separation in fingerprints, both %s", d.EnvID())
	}
}
