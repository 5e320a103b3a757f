package services

import (
	"fmt"
	"strings"

	"wada-stylist/internal/domain/entities"
	"wada-stylist/internal/domain/valueobjects"
)

// BuildColorAnalysisPrompt asks the vision model for one "clothing_item: Color" line per garment
// followed by a gender line, restricted to the given palette names.
func BuildColorAnalysisPrompt(paletteNames []string) string {
	return strings.Join([]string{
		`Persona`,
		`You are an expert color analyst specializing in the Wada Sanzo color palette. Analyze this image and identify the main colors present in the clothing. For each color, provide the closest matching color from the Wada Sanzo color palette. Do not say any information just give me direct answer from these color ` + strings.Join(paletteNames, ","),
		`Rules for Analysis & Output`,
		`Strict Output Format: Your entire output must only be a list using the exact format clothing_item: Color. After listing all clothing items, add a new line for the gender using the exact format gender: Male/Female.`,
		`Find exact type of clothing item and match it with the identified color.`,
		`No Extra Text or Explanation: Under no circumstances should you add any introductory text, explanations, summaries, bullet points, or closing remarks. Your response must begin directly with the first clothing item and end with the last line (gender).`,
	}, "\n")
}

// BuildOutfitPrompt is deterministic for the same garments, combination and style.
func BuildOutfitPrompt(clothesToKeep []string, combination entities.Combination, style valueobjects.Style) string {
	keep := strings.ToUpper(strings.Join(clothesToKeep, ", "))
	colors := strings.Join(combination.Names, ", ")

	return strings.Join([]string{
		`1.  **CHANGE THE BACKGROUND:** Replace the original background with a minimalist, seamless light grey studio backdrop.`,
		fmt.Sprintf(`2.  **APPLY A NEW OUTFIT (Wada Sanzo Inspired):** All clothing items on the person, **EXCEPT FOR THE %s**, must be replaced with a **completely new, stylish outfit.**`, keep),
		fmt.Sprintf(`    - This new outfit should be creatively designed, drawing inspiration from the aesthetic and color harmony of **A Dictionary of Color Combinations (Wada Sanzo), specifically referencing Combination %d: %s.**`, combination.Index, colors),
		fmt.Sprintf(`    - The AI should interpret this palette and design a harmonious ensemble (e.g., trousers, jacket, skirt, shoes, accessories as appropriate) that utilizes the %s colors in a sophisticated and balanced way across the new garments. The specific distribution of these colors across the new items is left to the AI's creative interpretation to best reflect the Wada Sanzo style.`, colors),
		``,
		`**STYLE REQUIREMENT: FORMAL AND STRUCTURED ADHERENCE**`,
		`**STRICTLY APPLY THE FOLLOWING STYLE:** ` + style.Instruction(),
		`**MANDATORY CLARIFIER:** The style must be interpreted as its most formal, traditional, and structured representation (e.g., if 'Business' is chosen, it must be 'Business Formal' with tailored garments and sharp silhouettes. If 'Streetwear' is chosen, it must be the most recognized, classic form of that style). DO NOT default to a 'casual' or 'comfort-focused' interpretation of the style.`,
		``,
		`**ALL other elements from the reference image MUST be preserved and remain UNCHANGED:**`,
		fmt.Sprintf(`1.  **DO NOT CHANGE THE SPECIFIED CLOTHES TO KEEP:** The **%s** MUST remain IDENTICAL to the one worn in the reference photo. Do not alter its original color, pattern, texture, or fit in any way.`, keep),
		`2.  **DO NOT CHANGE THE PERSON:** The person/model from the reference image, including their hair, skin tone, and facial expression, must be the exact same.`,
		`3.  **DO NOT CHANGE THE POSE AND COMPOSITION:** The person's pose, their orientation within the frame, and the camera angle/framing of the shot must be exactly the same as in the reference photo.`,
		`4.  **MAINTAIN ORIGINAL LIGHTING AND STYLE:** Preserve the original lighting direction, shadows, highlights, and overall photographic style. The new light grey studio background should be lit evenly and consistently with the original lighting on the person.`,
	}, "\n")
}

// BuildOutfitDescriptionPrompt asks for a raw JSON description of every garment, written in language.
func BuildOutfitDescriptionPrompt(language string) string {
	if language == "" {
		language = "Turkish"
	}

	return strings.Join([]string{
		`Identify every clothing item worn by the person in this image. For each item, provide the following details:`,
		`1.  **type**: The specific kind of garment (e.g., "t-shirt", "blouse", "jeans", "sneakers", "belt").`,
		`2.  **color**: A short description of the main color(s) of the garment.`,
		`3.  **style_details**: The most distinctive design elements (e.g., "slim fit, cotton, crew neck", "A-line, silk, floral print").`,
		`4.  **style_category**: The overall fashion style the item belongs to (e.g., "Casual", "Business", "Elegant", "Sporty", "Vintage").`,
		`5.  **features**: A list of distinctive, observable features (e.g., "button front", "zip pockets", "contrast stitching").`,
		`IMPORTANT: You must return *only* a valid JSON object. Do not add any introduction, explanation or Markdown formatting before or after the JSON.`,
		`Return the JSON object using exactly this structure:`,
		`{"gender": "male", "items": [{"type": "t-shirt", "color": "light blue", "style_details": "crew neck, short sleeves, cotton", "style_category": "Casual", "features": "no pockets, plain design"}]}`,
		fmt.Sprintf(`Return ONLY the raw JSON object. All values must be written in %s, except style_category.`, language),
	}, "\n")
}
