package services

import (
	"reflect"
	"testing"

	"wada-stylist/internal/domain/entities"
)

func TestFilterRecommendations(t *testing.T) {
	all := samplePalette().Combinations()

	tests := []struct {
		name     string
		selected []string
		filter   string
		want     []int
	}{
		{name: "no selection keeps everything", want: []int{1, 2, 3, 4, 5}},
		{name: "selected color keeps matching combinations", selected: []string{"Scarlet"}, want: []int{3, 5}},
		{name: "selected colors ignore case", selected: []string{"hermosa pink", "RED ORANGE"}, want: []int{2, 4, 5}},
		{name: "selected colors win over filter", selected: []string{"Scarlet"}, filter: "Red", want: []int{3, 5}},
		{name: "legacy filter is exact", filter: "Red", want: []int{1, 2}},
		{name: "legacy filter is case sensitive", filter: "red", want: []int{}},
		{name: "selection without matches", selected: []string{"Ultramarine"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indices(FilterRecommendations(all, tt.selected, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterRecommendations() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterRecommendations_OnlyMatchingCombination(t *testing.T) {
	all := []entities.Combination{
		{Index: 10, Names: []string{"Scarlet", "Olive Buff"}},
		{Index: 11, Names: []string{"Olive Buff", "Hermosa Pink"}},
	}

	got := FilterRecommendations(all, []string{"Scarlet"}, "")
	if len(got) != 1 || got[0].Index != 10 {
		t.Errorf("FilterRecommendations() = %v, want only combination 10", indices(got))
	}
}

func TestApplySelection(t *testing.T) {
	all := samplePalette().Combinations()
	detected := []entities.DetectedColor{
		{Clothing: "Shirt", Name: "Scarlet"},
		{Clothing: "Pants", Name: "Olive Buff"},
	}

	t.Run("selection outside the filtered set is cleared", func(t *testing.T) {
		five := 5
		state := entities.NewSelectionState().ToggleGarment("Shirt").WithCombination(&five)

		view, state := ApplySelection(state, detected, all)
		if !view.CanGenerate || view.SelectedCombination == nil || view.SelectedCombination.Index != 5 {
			t.Fatalf("combination 5 should be selectable, got %+v", view)
		}

		// #5 にだけ含まれる色の服を外し、Pants を選ぶ
		state = state.ToggleGarment("Shirt").ToggleGarment("Pants")
		view, state = ApplySelection(state, detected, all)

		if state.SelectedCombination != nil {
			t.Errorf("selection should be cleared, got %d", *state.SelectedCombination)
		}
		if view.CanGenerate || view.SelectedCombination != nil {
			t.Errorf("generation should be disabled, got %+v", view)
		}
		if !reflect.DeepEqual(indices(view.Combinations), []int{1, 3, 4}) {
			t.Errorf("filtered = %v", indices(view.Combinations))
		}
	})

	t.Run("count follows filtered list", func(t *testing.T) {
		view, _ := ApplySelection(entities.NewSelectionState(), detected, all)
		if view.Count != len(all) || view.CanGenerate {
			t.Errorf("view = %+v", view)
		}
	})

	t.Run("input state is not mutated", func(t *testing.T) {
		one := 1
		state := entities.NewSelectionState().ToggleGarment("Shirt").WithCombination(&one)
		_, next := ApplySelection(state, detected, all)

		if state.SelectedCombination == nil || *state.SelectedCombination != 1 {
			t.Errorf("original state changed")
		}
		if next.SelectedCombination != nil {
			t.Errorf("combination 1 has no Scarlet and should be cleared")
		}
	})
}
