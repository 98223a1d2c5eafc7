package catalog

import "github.com/converse98/pizzeria-pos/internal/domain"

// CustomPizzaID identifies the build-your-own half/half pizza.
const CustomPizzaID = "custom-half-half"

// DefaultProducts returns the full menu, including the customizable
// half/half pizza as the last entry.
func DefaultProducts() []domain.Product {
	products := []domain.Product{
		{ID: "p1", Name: "La Mozarella", Category: domain.CategoryClassic, Prices: [3]float64{7.00, 14.00, 20.00}, Ingredients: []string{"salsa de tomate", "queso mozarella"}},
		{ID: "p2", Name: "Napolitana", Category: domain.CategoryClassic, Prices: [3]float64{8.00, 15.00, 21.00}, Ingredients: []string{"salsa de tomate", "queso", "mozarella", "aceitunas"}},
		{ID: "p3", Name: "La Misia", Category: domain.CategoryClassic, Prices: [3]float64{9.00, 16.00, 22.00}, Ingredients: []string{"salsa de tomate", "queso", "mozarella", "hotdog"}},
		{ID: "p4", Name: "Americana", Category: domain.CategoryClassic, Prices: [3]float64{9.00, 17.00, 23.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "jamón pizzero"}},
		{ID: "p5", Name: "Choripizza", Category: domain.CategoryClassic, Prices: [3]float64{10.00, 18.00, 23.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "chorizo argentino"}},
		{ID: "p6", Name: "Española", Category: domain.CategoryClassic, Prices: [3]float64{10.00, 19.00, 24.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "chorizo argentino", "aceitunas"}},
		{ID: "p7", Name: "Vegetariana", Category: domain.CategoryClassic, Prices: [3]float64{12.00, 19.00, 25.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "aros de cebolla", "tomates en rodajas", "champiñones"}},
		{ID: "p8", Name: "Mixta", Category: domain.CategoryClassic, Prices: [3]float64{12.00, 19.00, 25.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "hotdog", "jamón pizzero", "pimientos"}},
		{ID: "p9", Name: "Peperoni", Category: domain.CategoryClassic, Prices: [3]float64{12.00, 19.00, 25.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "peperoni"}},
		{ID: "p10", Name: "Granjera", Category: domain.CategoryClassic, Prices: [3]float64{12.00, 20.00, 26.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "jamón", "champiñones", "aceituna"}},

		{ID: "s1", Name: "Alemana", Category: domain.CategorySpecial, Prices: [3]float64{12.00, 20.00, 26.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "chorizo", "tocino", "hotdog"}},
		{ID: "s2", Name: "Hawaiana", Category: domain.CategorySpecial, Prices: [3]float64{12.00, 20.00, 26.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "jamón pizzero", "piña", "durazno"}},
		{ID: "s3", Name: "Suprema", Category: domain.CategorySpecial, Prices: [3]float64{13.00, 20.00, 26.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "peperoni", "hotdog", "tocino"}},
		{ID: "s4", Name: "Italiana", Category: domain.CategorySpecial, Prices: [3]float64{14.00, 21.00, 27.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "chorizo", "tocino", "aceituna", "cebolla", "pimientos"}},
		{ID: "s5", Name: "Marocchinos", Category: domain.CategorySpecial, Prices: [3]float64{15.00, 26.00, 32.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "peperoni", "hotdog", "aceituna", "tocino", "pimientos", "champiñones"}},
		{ID: "s6", Name: "Puerca", Category: domain.CategorySpecial, Prices: [3]float64{15.00, 26.00, 32.00}, Ingredients: []string{"salsa de tomate", "queso mozarella", "jamón pizzero", "chorizo", "hotdog", "aceituna", "tocino", "pimientos"}},

		{ID: "c1", Name: "Combo Pizzero 1", Category: domain.CategoryCombo, Prices: [3]float64{27.00, 0, 0}, Ingredients: []string{"1 pizza americana familiar", "coca/inka de 1 litro"}, IsCombo: true},
		{ID: "c2", Name: "Combo Pizzero 2", Category: domain.CategoryCombo, Prices: [3]float64{34.00, 0, 0}, Ingredients: []string{"1 pizza familiar a elección", "coca/inka de 1 litro", "pan al ajo"}, IsCombo: true},
		{ID: "c3", Name: "Combo Pizzero 3", Category: domain.CategoryCombo, Prices: [3]float64{42.00, 0, 0}, Ingredients: []string{"1 pizza americana familiar", "1 choripizza"}, IsCombo: true},
		{ID: "c4", Name: "Combo Pizzero 4", Category: domain.CategoryCombo, Prices: [3]float64{52.00, 0, 0}, Ingredients: []string{"2 pizzas americana familiares", "coca/inka de 1 litro", "pan al ajo"}, IsCombo: true},
		{ID: "c5", Name: "Combo Pizzero 5", Category: domain.CategoryCombo, Prices: [3]float64{43.00, 0, 0}, Ingredients: []string{"2 pizzas a escoger entre mozarella, misia, americana, choripizza"}, IsCombo: true},
		{ID: "c6", Name: "Combo Pizzero 6", Category: domain.CategoryCombo, Prices: [3]float64{40.00, 0, 0}, Ingredients: []string{"2 pizzas a escoger entre mozarella, misia, napolitana"}, IsCombo: true},

		{ID: "cp1", Name: "Combo Pizzero Americanas", Category: domain.CategoryComboPlus, Prices: [3]float64{52.00, 0, 0}, Ingredients: []string{"2 pizzas familiares", "gaseosa coca o inca de 2 litros"}, IsCombo: true},
		{ID: "cp2", Name: "Combo Full Americanas", Category: domain.CategoryComboPlus, Prices: [3]float64{74.00, 0, 0}, Ingredients: []string{"3 pizzas americanas familiares", "1 gaseosa de 2 litros coca/inca"}, IsCombo: true},
		{ID: "cp3", Name: "Combo Tú Escoge la 2da", Category: domain.CategoryComboPlus, Prices: [3]float64{45.00, 0, 0}, Ingredients: []string{"1 pizza americana", "1 pizza a elección (hawaiana, peperoni, mixta o granjera)"}, IsCombo: true},

		{ID: "cc1", Name: "Combo Compartidas 1", Category: domain.CategorySharedCombo, Prices: [3]float64{36.00, 0, 0}, Ingredients: []string{"2 pizzas compartidas a escoger (solo clásicas)"}, IsCombo: true},
		{ID: "cc2", Name: "Combo Compartidas 2", Category: domain.CategorySharedCombo, Prices: [3]float64{42.00, 0, 0}, Ingredients: []string{"1 pizza compartida", "1 pizza familiar a escoger (solo clásicas)"}, IsCombo: true},

		{ID: "a1", Name: "Pan al Ajo (Media Porción)", Category: domain.CategorySide, Prices: [3]float64{3.00, 0, 0}, Ingredients: []string{"pan con mantequilla de ajo"}, IsSide: true},
		{ID: "a2", Name: "Pan al Ajo (1 Porción)", Category: domain.CategorySide, Prices: [3]float64{6.00, 0, 0}, Ingredients: []string{"pan con mantequilla de ajo"}, IsSide: true},
		{ID: "a3", Name: "Pan al Ajo Especial (Media Porción)", Category: domain.CategorySide, Prices: [3]float64{5.00, 0, 0}, Ingredients: []string{"pan con mantequilla de ajo y queso"}, IsSide: true},
		{ID: "a4", Name: "Pan al Ajo Especial (1 Porción)", Category: domain.CategorySide, Prices: [3]float64{9.00, 0, 0}, Ingredients: []string{"pan con mantequilla de ajo y queso"}, IsSide: true},
	}

	return append(products, domain.Product{
		ID:             CustomPizzaID,
		Name:           "Pizza Personalizada (Mitad/Mitad)",
		Category:       domain.CategoryCustom,
		Prices:         [3]float64{7.00, 14.00, 20.00},
		Ingredients:    []string{"Elige tu tamaño y dos sabores de pizza clásica o especial"},
		IsCustomizable: true,
	})
}

// DefaultExtras returns the fixed list of add-on ingredients.
func DefaultExtras() []domain.Extra {
	return []domain.Extra{
		{ID: "e1", Name: "Porción de Queso Extra", Price: 6.00},
		{ID: "e2", Name: "1/2 Porción de Queso", Price: 3.00},
		{ID: "e3", Name: "Jamón Extra", Price: 3.00},
		{ID: "e4", Name: "Chorizo Extra", Price: 3.00},
		{ID: "e5", Name: "Peperoni Extra", Price: 4.00},
		{ID: "e6", Name: "Tocino Extra", Price: 4.00},
		{ID: "e7", Name: "Pimentón, Aceituna, Cebolla", Price: 1.00, IsVegetable: true},
	}
}
