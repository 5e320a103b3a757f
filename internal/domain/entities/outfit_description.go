package entities

// OutfitItem is one garment as described by the outfit description model.
type OutfitItem struct {
	Type          string `json:"type"`
	Color         string `json:"color"`
	StyleDetails  string `json:"style_details"`
	StyleCategory string `json:"style_category"`
	Features      string `json:"features"`
}

type OutfitDescription struct {
	Gender string       `json:"gender"`
	Items  []OutfitItem `json:"items"`
}

type SearchQuery struct {
	Original    OutfitItem `json:"original"`
	SearchQuery string     `json:"searchQuery"`
}

// ShopLink is a prepared search URL on one retailer.
type ShopLink struct {
	Site      string `json:"site"`
	Domain    string `json:"domain"`
	SearchURL string `json:"searchUrl"`
	Query     string `json:"query"`
}

type ItemShopLinks struct {
	Item          OutfitItem `json:"item"`
	SearchResults []ShopLink `json:"searchResults"`
}
