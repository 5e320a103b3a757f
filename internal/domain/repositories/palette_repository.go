package repositories

import "wada-stylist/internal/domain/entities"

// PaletteRepository loads the reference palette and combination datasets.
type PaletteRepository interface {
	Load() (*entities.Palette, error)
}
