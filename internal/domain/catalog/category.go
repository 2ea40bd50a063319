package catalog

import "fmt"

// Category classifies machine models, symptoms and tickets. The set mirrors
// the product families the factory ships.
type Category string

const (
	CategoryCorte     Category = "CORTE"
	CategoryPrensa    Category = "PRENSA"
	CategoryBaterFumo Category = "BATER_FUMO"
	CategoryEletrica  Category = "ELETRICA"
	CategoryOutros    Category = "OUTROS"
)

var validCategories = map[Category]bool{
	CategoryCorte:     true,
	CategoryPrensa:    true,
	CategoryBaterFumo: true,
	CategoryEletrica:  true,
	CategoryOutros:    true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// AllCategories returns the fixed enumeration in display order.
func AllCategories() []Category {
	return []Category{
		CategoryCorte,
		CategoryPrensa,
		CategoryBaterFumo,
		CategoryEletrica,
		CategoryOutros,
	}
}
