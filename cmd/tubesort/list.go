package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Long:  `Shows the registered game modes and the campaign level table.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Campaign:")
	fmt.Println()
	fmt.Printf("  %-5s  %-14s  %s\n", "Level", "Name", "Tubes")
	fmt.Printf("  %-5s  %-14s  %s\n", "-----", "----", "-----")
	for _, lvl := range tubesort.Levels {
		fmt.Printf("  %-5d  %-14s  %d\n", lvl.ID, lvl.Name, lvl.Tubes())
	}

	fmt.Println()
	fmt.Println("Run 'tubesort play <id>' to play a mode.")
}
