// Package seed inserts demo rows at startup. Failures are logged and never
// stop the server; seed data is a convenience, not a dependency.
package seed

import (
	"context"
	"log"

	"github.com/clientdesk/clientdesk/internal/models"
	"github.com/clientdesk/clientdesk/internal/store"
)

var demoClients = []models.Client{
	{
		Name:              "Acme Corp",
		Email:             "contact@acme.com",
		Phone:             "555-0123",
		Details:           "Leading supplier of road runner traps.",
		Budget:            "50000",
		Status:            models.StatusInProgress,
		AssignedDeveloper: "John Doe",
	},
	{
		Name:              "Wayne Enterprises",
		Email:             "bruce@wayne.com",
		Phone:             "555-0999",
		Details:           "Secret project 'Batmobile upgrade'.",
		Budget:            "1000000",
		Status:            models.StatusNew,
		AssignedDeveloper: "Lucius Fox",
	},
	{
		Name:              "Stark Industries",
		Email:             "tony@stark.com",
		Phone:             "555-3000",
		Details:           "Jarvis AI enhancement.",
		Budget:            "5000000",
		Status:            models.StatusCompleted,
		AssignedDeveloper: "Tony Stark",
	},
}

// Every assignedDeveloper label above has a matching developer row.
var demoDevelopers = []models.Developer{
	{
		Name:        "John Doe",
		Email:       "john@clientdesk.local",
		TechStack:   "Go, PostgreSQL",
		Skills:      "Backend, API design",
		Description: "Handles trap-logistics integrations.",
	},
	{
		Name:        "Lucius Fox",
		Email:       "lucius@clientdesk.local",
		TechStack:   "Go, React",
		Skills:      "Full stack, R&D",
		Description: "Applied sciences division lead.",
	},
	{
		Name:        "Tony Stark",
		Email:       "tony@clientdesk.local",
		TechStack:   "Go, Redis, Kubernetes",
		Skills:      "Architecture, AI systems",
		Description: "Prefers to work alone.",
	},
	{
		Name:        "Jane Smith",
		Email:       "jane@clientdesk.local",
		TechStack:   "TypeScript, React",
		Skills:      "Frontend, UX",
		Description: "Owns the admin views.",
	},
}

// Run seeds three clients when the table is empty and upserts the demo
// developers by email so re-running is harmless.
func Run(ctx context.Context, st store.Store) {
	clients, err := st.ListClients(ctx)
	if err != nil {
		log.Printf("seed skipped: %v", err)
		return
	}

	if len(clients) == 0 {
		for i := range demoClients {
			client := demoClients[i]
			if err := st.CreateClient(ctx, &client); err != nil {
				log.Printf("seed client %q: %v", client.Name, err)
			}
		}
	}

	for i := range demoDevelopers {
		dev := demoDevelopers[i]
		if err := st.UpsertDeveloperByEmail(ctx, &dev); err != nil {
			log.Printf("seed developer %q: %v", dev.Name, err)
		}
	}
}
