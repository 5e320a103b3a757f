package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"wada-stylist/internal/domain/entities"
	domainrepos "wada-stylist/internal/domain/repositories"
	"wada-stylist/model"
)

type JSONPaletteRepository struct {
	colorsPath       string
	combinationsPath string
}

func NewJSONPaletteRepository(colorsPath, combinationsPath string) domainrepos.PaletteRepository {
	return &JSONPaletteRepository{
		colorsPath:       colorsPath,
		combinationsPath: combinationsPath,
	}
}

// Load reads both datasets. Integrity problems are logged, not fatal.
func (r *JSONPaletteRepository) Load() (*entities.Palette, error) {
	var colorFile model.ColorFile
	if err := readJSON(r.colorsPath, &colorFile); err != nil {
		return nil, err
	}

	var combinationFile model.CombinationFile
	if err := readJSON(r.combinationsPath, &combinationFile); err != nil {
		return nil, err
	}

	if len(colorFile.Colors) == 0 {
		return nil, fmt.Errorf("palette %s has no colors", r.colorsPath)
	}

	palette := entities.NewPalette(colorFile.ToEntities(), combinationFile.ToEntities())

	if problems := palette.Validate(); len(problems) > 0 {
		slog.Warn("Palette dataset has integrity problems", "count", len(problems), "first", problems[0])
	}

	slog.Info("Palette loaded", "colors", palette.Len(), "combinations", palette.CombinationCount())
	return palette, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
