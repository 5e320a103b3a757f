package usecases

import (
	"fmt"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/valueobjects"
)

type PaletteUseCase struct {
	palette *entities.Palette
}

func NewPaletteUseCase(palette *entities.Palette) *PaletteUseCase {
	return &PaletteUseCase{palette: palette}
}

type ColorDetailOutput struct {
	Color        entities.PaletteColor  `json:"color"`
	Combinations []entities.Combination `json:"combinations"`
}

func (uc *PaletteUseCase) Colors() []entities.PaletteColor {
	return uc.palette.Colors()
}

func (uc *PaletteUseCase) Color(index int) (*ColorDetailOutput, error) {
	color, ok := uc.palette.ColorByIndex(index)
	if !ok {
		return nil, notFound(fmt.Sprintf("Color %d not found", index))
	}
	return &ColorDetailOutput{
		Color:        color,
		Combinations: uc.palette.CombinationsForColor(color),
	}, nil
}

func (uc *PaletteUseCase) Combinations() []entities.Combination {
	return uc.palette.Combinations()
}

func (uc *PaletteUseCase) Combination(index int) (*entities.Combination, error) {
	comb, ok := uc.palette.Combination(index)
	if !ok {
		return nil, notFound(fmt.Sprintf("Combination %d not found", index))
	}
	return &comb, nil
}

func notFound(message string) error {
	return valueobjects.NewFailure(valueobjects.FailureNotFound, message, nil).WithUserMessage(message)
}
