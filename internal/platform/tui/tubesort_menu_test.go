package tui

import (
	"testing"

	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/games/tubesort/levels"
)

func pressMode(m TubeSortModeModel, keys ...string) TubeSortModeModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(TubeSortModeModel)
	}
	return m
}

func TestModeSelectorCampaign(t *testing.T) {
	m := pressMode(NewTubeSortModeModel(80, 24, 0, nil), "enter")

	sel := m.Selected()
	if sel == nil || sel.Mode != TubeSortModeCampaign || sel.Level != 0 {
		t.Fatalf("Selected() = %+v, want campaign from the start", sel)
	}
	if g := sel.NewGame(); g.ID() != "tubesort" {
		t.Errorf("game ID = %q", g.ID())
	}
}

func TestModeSelectorContinue(t *testing.T) {
	m := pressMode(NewTubeSortModeModel(80, 24, 6, nil), "down", "enter")

	sel := m.Selected()
	if sel == nil || sel.Level != 6 {
		t.Fatalf("Selected() = %+v, want continue at level 6", sel)
	}
}

func TestModeSelectorEndless(t *testing.T) {
	m := pressMode(NewTubeSortModeModel(80, 24, 0, nil), "down", "enter")

	sel := m.Selected()
	if sel == nil || sel.Mode != TubeSortModeEndless {
		t.Fatalf("Selected() = %+v, want endless", sel)
	}
	if g := sel.NewGame(); g.ID() != "tubesort_endless" {
		t.Errorf("game ID = %q", g.ID())
	}
}

func TestModeSelectorLevelList(t *testing.T) {
	m := pressMode(NewTubeSortModeModel(80, 24, 0, nil), "down", "down", "enter")
	if !m.inLevelList {
		t.Fatal("expected level list")
	}

	m = pressMode(m, "down", "down", "enter")
	sel := m.Selected()
	if sel == nil || sel.Level != 3 {
		t.Fatalf("Selected() = %+v, want level 3", sel)
	}
}

func TestModeSelectorPacks(t *testing.T) {
	board, err := tubesort.NewBoard([][]string{{"red", "blue"}, {"blue"}, {}})
	if err != nil {
		t.Fatal(err)
	}
	packs := []levels.Level{{ID: "a", Name: "Pair", Board: board}}

	m := pressMode(NewTubeSortModeModel(80, 24, 0, packs), "down", "down", "down", "enter")
	if !m.inPackList {
		t.Fatal("expected pack list")
	}
	m = pressMode(m, "enter")

	sel := m.Selected()
	if sel == nil || sel.Mode != TubeSortModePack || sel.Pack == nil || sel.Pack.Name != "Pair" {
		t.Fatalf("Selected() = %+v, want the Pair pack", sel)
	}
}

func TestModeSelectorBack(t *testing.T) {
	m := pressMode(NewTubeSortModeModel(80, 24, 0, nil), "down", "down", "enter", "esc")
	if m.inLevelList {
		t.Error("esc should leave the level list")
	}

	m = pressMode(m, "esc")
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc on the mode list should go back without a selection")
	}
}
