package model

// Product mirrors the read endpoint's item shape. The client treats it as an
// opaque payload: fields are rendered, never validated.
type Product struct {
	ID          int     `json:"id"`
	Available   bool    `json:"available"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  int     `json:"categoryID"`
	Category    string  `json:"category"`
	URL         string  `json:"url"`
	BuyURL      string  `json:"buyUrl"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryName resolves id against cats, falling back to "-" when the
// category is unknown (e.g. it was deleted while products still reference it).
func CategoryName(cats []Category, id int) string {
	for _, c := range cats {
		if c.ID == id {
			return c.Name
		}
	}
	return "-"
}
