package services

import (
	"wada-stylist/internal/domain/entities"
)

// FilterRecommendations narrows the recommendation set for the current selection.
// Selected color names win over the single color filter; with neither, everything is kept.
func FilterRecommendations(all []entities.Combination, selectedNames []string, activeFilter string) []entities.Combination {
	filtered := make([]entities.Combination, 0, len(all))

	switch {
	case len(selectedNames) > 0:
		for _, comb := range all {
			for _, name := range selectedNames {
				if comb.HasName(name) {
					filtered = append(filtered, comb)
					break
				}
			}
		}
	case activeFilter != "":
		for _, comb := range all {
			if comb.ContainsExact(activeFilter) {
				filtered = append(filtered, comb)
			}
		}
	default:
		filtered = append(filtered, all...)
	}

	return filtered
}

// ApplySelection computes the view for state. When the selected combination is filtered out
// the returned state has it cleared.
func ApplySelection(
	state entities.SelectionState,
	detected []entities.DetectedColor,
	all []entities.Combination,
) (entities.RecommendationView, entities.SelectionState) {
	filtered := FilterRecommendations(all, state.SelectedColorNames(detected), state.ActiveColorFilter)

	view := entities.RecommendationView{
		Combinations: filtered,
		Count:        len(filtered),
	}

	if state.SelectedCombination == nil {
		return view, state
	}

	for i := range filtered {
		if filtered[i].Index == *state.SelectedCombination {
			selected := filtered[i]
			view.SelectedCombination = &selected
			view.CanGenerate = true
			return view, state
		}
	}

	return view, state.WithCombination(nil)
}
