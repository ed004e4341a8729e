package model

// Variant is one purchasable configuration of a product. Price is a
// display string and never used for arithmetic.
type Variant struct {
	Model string `json:"model"`
	Price string `json:"price"`
}

// Product represents one catalog entry. JSON keys match the stored
// document exactly.
type Product struct {
	ID        int       `json:"id"`
	Brand     string    `json:"brand"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	ImgURL    string    `json:"imgUrl"`
	Tag       string    `json:"tag"`
	Available bool      `json:"available"`
	Variants  []Variant `json:"variants"`
}

// Valid reports whether the product carries the minimum data the
// storefront needs: brand, name and at least one complete variant.
func (p *Product) Valid() bool {
	if p.Brand == "" || p.Name == "" {
		return false
	}
	for _, v := range p.Variants {
		if v.Model != "" && v.Price != "" {
			return true
		}
	}
	return false
}
