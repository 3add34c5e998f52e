package main

// Render a sample export document without a database:
//   go run ./cmd/renderdemo -out ./out/sample-previews.html

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"orca-backend/internal/export"
	"orca-backend/internal/previews"
	"orca-backend/internal/projects"
	"orca-backend/internal/scoring"
	"orca-backend/internal/snapshots"
)

func main() {
	outPath := flag.String("out", "./out/sample-previews.html", "output path for the generated HTML export")
	flag.Parse()

	repo := snapshots.NewMemoryRepo()
	seedSampleProject(repo)

	svc := &previews.Service{
		Snapshots: repo,
		Cfg:       scoring.DefaultConfig(),
	}

	entries, err := svc.ProjectPreviews(context.Background(), "demo-project", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate previews: %v\n", err)
		os.Exit(1)
	}

	project := projects.Project{
		ID:          "demo-project",
		Title:       "Team Task Tracker",
		Description: "A sample domain model used to demo the preview exporter.",
		CreatedAt:   time.Now().UTC(),
	}
	html := export.ComposeHTML(project, entries)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%d objects)\n", *outPath, len(entries))
}

func seedSampleProject(repo *snapshots.MemoryRepo) {
	title := "Task title"
	due := "2026-09-15"
	repo.PutObject("demo-project", snapshots.ObjectSnapshot{
		ID:         "obj-task",
		Name:       "Task",
		Definition: "A unit of work assigned to a team member with a due date and status.",
		AllAttributes: []snapshots.AttributeSnapshot{
			{Name: "Title", DataType: snapshots.DataTypeText, Value: &title, IsCore: true},
			{Name: "Due Date", DataType: snapshots.DataTypeDate, Value: &due, IsCore: true},
			{Name: "Status", DataType: snapshots.DataTypeText, IsCore: true},
			{Name: "Notes", DataType: snapshots.DataTypeText},
		},
		AllActions: []snapshots.ActionSnapshot{
			{Description: "Create Task", CRUDType: snapshots.CRUDCreate, IsPrimary: true},
			{Description: "View Task", CRUDType: snapshots.CRUDRead},
			{Description: "Complete Task", CRUDType: snapshots.CRUDUpdate, IsPrimary: true},
			{Description: "Delete Task", CRUDType: snapshots.CRUDDelete},
		},
		RelationshipCount: 2,
		PriorityPhase:     snapshots.PhaseNow,
	})

	repo.PutObject("demo-project", snapshots.ObjectSnapshot{
		ID:         "obj-member",
		Name:       "Team Member",
		Definition: "Someone who can own tasks.",
		AllAttributes: []snapshots.AttributeSnapshot{
			{Name: "Name", DataType: snapshots.DataTypeText, IsCore: true},
		},
		AllActions: []snapshots.ActionSnapshot{
			{Description: "Invite Member", CRUDType: snapshots.CRUDCreate},
		},
		RelationshipCount: 1,
		PriorityPhase:     snapshots.PhaseNext,
	})
}
