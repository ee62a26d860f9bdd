package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary"
)

var wipeFirst bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load creatures from the asset tree into storage",
	Long: `Scan <assets-dir>/monsters/*.png and <assets-dir>/parts/<name>/*.png and
store every creature whose name is not already taken.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&wipeFirst, "wipe", false, "remove all creatures and composites first")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if appConfig.Redis.Addr == "" {
		slog.WarnContext(ctx, "no redis address configured; seeded data lives only as long as this command")
	}

	svc, err := buildServices(ctx, appConfig)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	defer svc.close()

	if wipeFirst {
		out, err := svc.bestiary.Wipe(ctx, &bestiary.WipeInput{})
		if err != nil {
			return fmt.Errorf("failed to wipe: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wiped %d creatures and %d composites\n", out.Creatures, out.Composites)
	}

	out, err := svc.bestiary.Seed(ctx, &bestiary.SeedInput{})
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "added %d: %s\n", len(out.Added), strings.Join(out.Added, ", "))
	fmt.Fprintf(w, "skipped %d: %s\n", len(out.Skipped), strings.Join(out.Skipped, ", "))
	return nil
}
