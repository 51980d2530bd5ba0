package catalog

// Fixed menu for the pizzeria. Prices are in BRL.

var Pizzas = []Pizza{
	{
		ID:          "1",
		Name:        "Calabresa Especial",
		Description: "Sliced calabresa sausage, onion, black olives, oregano and house sauce",
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 35, SizeMedium: 45, SizeLarge: 55, SizeGiant: 70},
		Category:    "traditional",
	},
	{
		ID:          "2",
		Name:        "Marguerita Tradicional",
		Description: "Tomato sauce, buffalo mozzarella, fresh tomato, basil and extra virgin olive oil",
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 38, SizeMedium: 48, SizeLarge: 60, SizeGiant: 75},
		Category:    "traditional",
	},
	{
		ID:          "3",
		Name:        "Portuguesa Completa",
		Description: "Ham, eggs, onion, peas, heart of palm, mozzarella and olives",
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 40, SizeMedium: 52, SizeLarge: 65, SizeGiant: 80},
		Category:    "traditional",
	},
	{
		ID:          "4",
		Name:        "Frango com Catupiry",
		Description: "Seasoned shredded chicken, creamy catupiry, corn and oregano",
		Image:       "https://images.unsplash.com/photo-1593560708920-61dd98c46a4e?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 42, SizeMedium: 54, SizeLarge: 68, SizeGiant: 85},
		Category:    "traditional",
	},
	{
		ID:          "5",
		Name:        "Quatro Queijos",
		Description: "Mozzarella, provolone, parmesan and gorgonzola with oregano",
		Image:       "https://images.unsplash.com/photo-1571407970349-bc81e7e96d47?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 45, SizeMedium: 58, SizeLarge: 72, SizeGiant: 90},
		Category:    "special",
	},
	{
		ID:          "6",
		Name:        "Pepperoni Premium",
		Description: "Imported pepperoni, special mozzarella, bell peppers and spicy sauce",
		Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 48, SizeMedium: 62, SizeLarge: 78, SizeGiant: 95},
		Category:    "special",
	},
	{
		ID:          "7",
		Name:        "Carne Seca com Cream Cheese",
		Description: "Shredded dried beef, cream cheese, caramelized onion and arugula",
		Image:       "https://images.unsplash.com/photo-1604382355076-af4b0eb60143?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 52, SizeMedium: 68, SizeLarge: 85, SizeGiant: 105},
		Category:    "special",
	},
	{
		ID:          "8",
		Name:        "Chocolate com Morango",
		Description: "Melted milk chocolate, fresh strawberries and whipped cream",
		Image:       "https://images.unsplash.com/photo-1481391319762-47dff72954d9?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 35, SizeMedium: 45, SizeLarge: 55, SizeGiant: 70},
		Category:    "sweet",
	},
	{
		ID:          "9",
		Name:        "Banana com Canela",
		Description: "Caramelized banana, cinnamon, sugar and condensed milk",
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 32, SizeMedium: 42, SizeLarge: 52, SizeGiant: 65},
		Category:    "sweet",
	},
	{
		ID:          "10",
		Name:        "Romeu e Julieta",
		Description: "Melted mozzarella with creamy guava paste",
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&h=300&fit=crop",
		Prices:      map[PizzaSize]float64{SizeSmall: 34, SizeMedium: 44, SizeLarge: 54, SizeGiant: 68},
		Category:    "sweet",
	},
}

var Beverages = []Beverage{
	{
		ID:          "b1",
		Name:        "Coca-Cola",
		Description: "Cold Coca-Cola soda",
		Image:       "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=400&h=300&fit=crop",
		Price:       8,
		Size:        "350ml",
	},
	{
		ID:          "b4",
		Name:        "Guaraná Antarctica",
		Description: "Cold Guaraná soda",
		Image:       "https://images.unsplash.com/photo-1625772299848-391b6a87d7b3?w=400&h=300&fit=crop",
		Price:       7,
		Size:        "350ml",
	},
	{
		ID:          "b6",
		Name:        "Suco Natural de Laranja",
		Description: "Freshly squeezed orange juice",
		Image:       "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=400&h=300&fit=crop",
		Price:       10,
		Size:        "300ml",
	},
	{
		ID:          "b7",
		Name:        "Água Mineral",
		Description: "Still mineral water",
		Image:       "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?w=400&h=300&fit=crop",
		Price:       4,
		Size:        "500ml",
	},
	{
		ID:          "b8",
		Name:        "Água com Gás",
		Description: "Sparkling mineral water",
		Image:       "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?w=400&h=300&fit=crop",
		Price:       5,
		Size:        "500ml",
	},
}

var Desserts = []Dessert{
	{
		ID:          "s1",
		Name:        "Petit Gâteau",
		Description: "Chocolate cake with a molten center, served with vanilla ice cream",
		Image:       "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?w=400&h=300&fit=crop",
		Price:       22,
	},
	{
		ID:          "s2",
		Name:        "Brownie com Sorvete",
		Description: "Intense chocolate brownie with vanilla ice cream and syrup",
		Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400&h=300&fit=crop",
		Price:       18,
	},
	{
		ID:          "s3",
		Name:        "Cheesecake de Frutas Vermelhas",
		Description: "Creamy cheesecake with red berry coulis",
		Image:       "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=400&h=300&fit=crop",
		Price:       20,
	},
	{
		ID:          "s4",
		Name:        "Tiramisù",
		Description: "Italian dessert with coffee, mascarpone and cocoa",
		Image:       "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=400&h=300&fit=crop",
		Price:       24,
	},
}

var Crusts = []Crust{
	{ID: "crust1", Name: "No stuffed crust", Price: 0},
	{ID: "crust2", Name: "Catupiry", Price: 8},
	{ID: "crust3", Name: "Cheddar", Price: 8},
	{ID: "crust4", Name: "Cream Cheese", Price: 10},
	{ID: "crust5", Name: "Chocolate", Price: 10},
}

var Extras = []Extra{
	{ID: "add1", Name: "Extra bacon", Price: 6},
	{ID: "add2", Name: "Extra cheese", Price: 5},
	{ID: "add3", Name: "Extra calabresa", Price: 6},
	{ID: "add4", Name: "Extra catupiry", Price: 7},
	{ID: "add5", Name: "Extra olives", Price: 4},
	{ID: "add6", Name: "Extra onion", Price: 3},
}
