package catalog

// PizzaSize selects one of the fixed pizza sizes.
type PizzaSize string

const (
	SizeSmall  PizzaSize = "small"
	SizeMedium PizzaSize = "medium"
	SizeLarge  PizzaSize = "large"
	SizeGiant  PizzaSize = "giant"
)

// Sizes lists every pizza size in ascending order.
var Sizes = []PizzaSize{SizeSmall, SizeMedium, SizeLarge, SizeGiant}

// Pizza is a catalog pizza with one price per size.
type Pizza struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Image       string                `json:"image"`
	Prices      map[PizzaSize]float64 `json:"prices"`
	Category    string                `json:"category"` // traditional, special or sweet
}

// Beverage is a single-price drink.
type Beverage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
}

// Dessert is a single-price dessert.
type Dessert struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// Crust is a stuffed-crust option with an additive price.
type Crust struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Extra is an additional topping with an additive price.
type Extra struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var sizeLabels = map[PizzaSize]string{
	SizeSmall:  "Small (4 slices)",
	SizeMedium: "Medium (6 slices)",
	SizeLarge:  "Large (8 slices)",
	SizeGiant:  "Giant (12 slices)",
}

// ValidSize reports whether s is one of the fixed pizza sizes.
func ValidSize(s PizzaSize) bool {
	_, ok := sizeLabels[s]
	return ok
}

// SizeLabel returns the customer-facing label for a size.
func SizeLabel(s PizzaSize) string {
	return sizeLabels[s]
}

// PizzaByID looks up a catalog pizza by its stable identifier.
func PizzaByID(id string) (Pizza, bool) {
	for _, p := range Pizzas {
		if p.ID == id {
			return p, true
		}
	}
	return Pizza{}, false
}

// BeverageByID looks up a catalog beverage by its stable identifier.
func BeverageByID(id string) (Beverage, bool) {
	for _, b := range Beverages {
		if b.ID == id {
			return b, true
		}
	}
	return Beverage{}, false
}

// DessertByID looks up a catalog dessert by its stable identifier.
func DessertByID(id string) (Dessert, bool) {
	for _, d := range Desserts {
		if d.ID == id {
			return d, true
		}
	}
	return Dessert{}, false
}

// CrustByID looks up a crust option by its stable identifier.
func CrustByID(id string) (Crust, bool) {
	for _, c := range Crusts {
		if c.ID == id {
			return c, true
		}
	}
	return Crust{}, false
}

// ExtraByID looks up an extra topping by its stable identifier.
func ExtraByID(id string) (Extra, bool) {
	for _, e := range Extras {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}
