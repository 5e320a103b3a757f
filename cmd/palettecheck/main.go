package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/infrastructure/repositories"
)

func main() {
	colorsPath := flag.String("colors", "data/color.json", "path of color.json")
	combinationsPath := flag.String("combinations", "data/combined_colors.json", "path of combined_colors.json")
	strict := flag.Bool("strict", false, "also require combination codes to match the palette rgb values")
	flag.Parse()

	palette, err := repositories.NewJSONPaletteRepository(*colorsPath, *combinationsPath).Load()
	if err != nil {
		log.Fatal(err)
	}

	problems := palette.Validate()
	if *strict {
		problems = append(problems, crossCheck(palette)...)
	}

	fmt.Printf("%d colors, %d combinations\n", palette.Len(), palette.CombinationCount())
	if len(problems) == 0 {
		fmt.Println("ok")
		return
	}

	for _, p := range problems {
		fmt.Println("  -", p)
	}
	fmt.Printf("%d problem(s)\n", len(problems))
	os.Exit(1)
}

// crossCheck compares every combination member with its palette entry.
func crossCheck(palette *entities.Palette) []string {
	var problems []string

	for _, comb := range palette.Combinations() {
		for i, name := range comb.Names {
			color, ok := palette.ExactColor(name)
			if !ok {
				problems = append(problems, fmt.Sprintf("combination %d: %q is not a palette color", comb.Index, name))
				continue
			}

			if i < len(comb.Codes) {
				code, err := entities.ParseRGBCode(comb.Codes[i])
				if err == nil && formatRGB(code) != normalizeRGB(color.RGB) {
					problems = append(problems, fmt.Sprintf("combination %d: %s is %s here but %s in the palette", comb.Index, name, formatRGB(code), color.RGB))
				}
			}

			if !containsInt(color.Combinations, comb.Index) {
				problems = append(problems, fmt.Sprintf("combination %d: not listed by color %d (%s)", comb.Index, color.Index, color.Name))
			}
		}
	}

	return problems
}

func formatRGB(rgb entities.RGB) string {
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}

func normalizeRGB(s string) string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
