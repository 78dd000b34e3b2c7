package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dylan-PlymouthUni/trailhead/internal/auth"
	"github.com/Dylan-PlymouthUni/trailhead/internal/config"
	"github.com/Dylan-PlymouthUni/trailhead/internal/trail"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo role records and trails",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

var demoUsers = []struct {
	Email string
	Role  string
}{
	{"grace@plymouth.ac.uk", auth.RoleAdmin},
	{"tim@plymouth.ac.uk", auth.RoleUser},
	{"ada@plymouth.ac.uk", auth.RoleUser},
}

func strPtr(s string) *string       { return &s }
func float64Ptr(f float64) *float64 { return &f }

var demoTrails = []trail.CreateTrailInput{
	{
		TrailID:     "PLY-DART-01",
		Name:        "Plymbridge Circular",
		Description: strPtr("Woodland loop following the River Plym past the old slate quarries."),
		Difficulty:  strPtr("Easy"),
		Length:      float64Ptr(5.6),
		TrailType:   strPtr("Loop"),
		Duration:    strPtr("1h30"),
		OwnerEmail:  "grace@plymouth.ac.uk",
		Latitude:    float64Ptr(50.4168),
		Longitude:   float64Ptr(-4.0704),
	},
	{
		TrailID:     "PLY-COAST-02",
		Name:        "Wembury Coast Path",
		Description: strPtr("Cliff-top section of the South West Coast Path with views over the Mewstone."),
		Difficulty:  strPtr("Moderate"),
		Length:      float64Ptr(9.2),
		TrailType:   strPtr("Out and back"),
		Duration:    strPtr("3h"),
		OwnerEmail:  "grace@plymouth.ac.uk",
		Latitude:    float64Ptr(50.3169),
		Longitude:   float64Ptr(-4.0852),
	},
	{
		TrailID:     "DART-TOR-03",
		Name:        "Haytor and Hound Tor",
		Description: strPtr("Open moorland crossing between two granite tors."),
		Difficulty:  strPtr("Hard"),
		Length:      float64Ptr(12.1),
		TrailType:   strPtr("Loop"),
		Duration:    strPtr("4h"),
		OwnerEmail:  "grace@plymouth.ac.uk",
		Latitude:    float64Ptr(50.5806),
		Longitude:   float64Ptr(-3.7557),
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	for _, u := range demoUsers {
		_, err := pool.Exec(ctx,
			`INSERT INTO cw2.app_user (email, role) VALUES ($1, $2)
			 ON CONFLICT (email) DO NOTHING`,
			u.Email, u.Role,
		)
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", u.Email, err)
		}
		slog.Info("seeded role record", "email", u.Email, "role", u.Role)
	}

	trailStore := trail.NewStore(pool)

	// Check if seed has already run.
	existing, err := trailStore.List(ctx)
	if err != nil {
		return fmt.Errorf("checking existing trails: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("demo trails already exist, skipping seed")
		return nil
	}

	for _, input := range demoTrails {
		t, err := trailStore.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("creating trail %q: %w", input.TrailID, err)
		}
		slog.Info("created trail", "id", t.TrailID, "name", t.Name)
	}

	fmt.Printf("\n=== Demo Data Seeded ===\n")
	fmt.Printf("Role records: %d\n", len(demoUsers))
	fmt.Printf("Trails:       %d\n", len(demoTrails))
	fmt.Printf("\nTry it:\n")
	fmt.Printf("  curl -X POST http://localhost:8080/login -d '{\"email\":\"grace@plymouth.ac.uk\",\"password\":\"...\"}'\n")
	fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:8080/trails\n")

	return nil
}
