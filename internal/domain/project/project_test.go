package project

import (
	"testing"
	"time"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)
	p, err := NewProject(1, "Portfolio Rework", "Frontend refresh", start, end, 2)
	if err != nil {
		t.Fatalf("NewProject() error = %v, want nil", err)
	}
	return p
}

func TestNewProject_Valid(t *testing.T) {
	p := newTestProject(t)
	if p.Archived() {
		t.Error("new project must start unarchived")
	}
	if p.Version() != 1 {
		t.Errorf("Version() = %d, want 1", p.Version())
	}
}

func TestNewProject_Invalid(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		companyID  uint
		pname      string
		start      time.Time
		end        time.Time
		priorityID uint
	}{
		{"missing company", 0, "P", start, start.AddDate(0, 1, 0), 2},
		{"empty name", 1, "", start, start.AddDate(0, 1, 0), 2},
		{"missing priority", 1, "P", start, start.AddDate(0, 1, 0), 0},
		{"end precedes start", 1, "P", start, start.AddDate(0, -1, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.companyID, tt.pname, "d", tt.start, tt.end, tt.priorityID)
			if err == nil {
				t.Error("NewProject() error = nil, want error")
			}
		})
	}
}

func TestProject_ArchiveRestore(t *testing.T) {
	p := newTestProject(t)

	p.Archive()
	if !p.Archived() {
		t.Error("Archive() did not set the flag")
	}
	if p.Version() != 2 {
		t.Errorf("Version() after archive = %d, want 2", p.Version())
	}

	p.Archive()
	if p.Version() != 2 {
		t.Errorf("Version() after repeated archive = %d, want 2", p.Version())
	}

	p.Restore()
	if p.Archived() {
		t.Error("Restore() did not clear the flag")
	}

	p.Restore()
	if p.Version() != 3 {
		t.Errorf("Version() after repeated restore = %d, want 3", p.Version())
	}
}

func TestProject_UpdateDetails(t *testing.T) {
	p := newTestProject(t)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	if err := p.UpdateDetails("Renamed", "new description", start, end, 3); err != nil {
		t.Fatalf("UpdateDetails() error = %v", err)
	}
	if p.Name() != "Renamed" || p.PriorityID() != 3 {
		t.Errorf("details = (%q, %d), want (Renamed, 3)", p.Name(), p.PriorityID())
	}
	if p.Version() != 2 {
		t.Errorf("Version() = %d, want 2", p.Version())
	}

	if err := p.UpdateDetails("Renamed", "d", end, start, 3); err == nil {
		t.Error("UpdateDetails with end before start error = nil, want error")
	}
}

func TestProject_SetID(t *testing.T) {
	p := newTestProject(t)
	if err := p.SetID(4); err != nil {
		t.Fatalf("SetID(4) error = %v", err)
	}
	if err := p.SetID(5); err == nil {
		t.Error("SetID on an identified project error = nil, want error")
	}
}
