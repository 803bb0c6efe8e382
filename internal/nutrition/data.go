package nutrition

// defaultEntries is the built-in reference set. Names are lowercase
// Russian product names; values are kcal and grams per 100 g of product.
var defaultEntries = []Entry{
	// Fruits
	{Name: "яблоко", Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 14},
	{Name: "банан", Calories: 96, Protein: 1.1, Fat: 0.2, Carbs: 23},
	{Name: "апельсин", Calories: 47, Protein: 0.9, Fat: 0.1, Carbs: 12},
	{Name: "мандарин", Calories: 53, Protein: 0.8, Fat: 0.2, Carbs: 13},
	{Name: "груша", Calories: 57, Protein: 0.4, Fat: 0.1, Carbs: 15},
	{Name: "виноград", Calories: 69, Protein: 0.7, Fat: 0.2, Carbs: 18},
	{Name: "киви", Calories: 61, Protein: 1.1, Fat: 0.5, Carbs: 15},
	{Name: "персик", Calories: 39, Protein: 0.9, Fat: 0.3, Carbs: 10},
	{Name: "арбуз", Calories: 30, Protein: 0.6, Fat: 0.2, Carbs: 8},
	{Name: "дыня", Calories: 34, Protein: 0.8, Fat: 0.2, Carbs: 8},
	{Name: "клубника", Calories: 33, Protein: 0.7, Fat: 0.3, Carbs: 8},
	{Name: "черника", Calories: 57, Protein: 0.7, Fat: 0.3, Carbs: 14},
	{Name: "малина", Calories: 52, Protein: 1.2, Fat: 0.7, Carbs: 12},
	{Name: "вишня", Calories: 50, Protein: 1, Fat: 0.3, Carbs: 12},
	{Name: "слива", Calories: 46, Protein: 0.7, Fat: 0.3, Carbs: 11},
	{Name: "лимон", Calories: 29, Protein: 1.1, Fat: 0.3, Carbs: 9},
	{Name: "гранат", Calories: 83, Protein: 1.7, Fat: 1.2, Carbs: 19},
	{Name: "авокадо", Calories: 160, Protein: 2, Fat: 15, Carbs: 9},

	// Meat and poultry
	{Name: "курица", Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0},
	{Name: "куриная грудка", Calories: 113, Protein: 24, Fat: 1.9, Carbs: 0},
	{Name: "куриное бедро", Calories: 221, Protein: 17, Fat: 16, Carbs: 0},
	{Name: "говядина", Calories: 250, Protein: 26, Fat: 15, Carbs: 0},
	{Name: "свинина", Calories: 259, Protein: 16, Fat: 21, Carbs: 0},
	{Name: "баранина", Calories: 209, Protein: 17, Fat: 15, Carbs: 0},
	{Name: "индейка", Calories: 189, Protein: 29, Fat: 7, Carbs: 0},
	{Name: "котлета", Calories: 260, Protein: 14, Fat: 20, Carbs: 7},
	{Name: "фарш", Calories: 254, Protein: 17, Fat: 20, Carbs: 0},
	{Name: "колбаса", Calories: 301, Protein: 12, Fat: 28, Carbs: 1},
	{Name: "сосиска", Calories: 266, Protein: 11, Fat: 24, Carbs: 2},
	{Name: "ветчина", Calories: 145, Protein: 21, Fat: 6, Carbs: 1},
	{Name: "бекон", Calories: 541, Protein: 37, Fat: 42, Carbs: 1.4},
	{Name: "печень", Calories: 127, Protein: 20, Fat: 4, Carbs: 4},

	// Fish and seafood
	{Name: "рыба", Calories: 206, Protein: 22, Fat: 12, Carbs: 0},
	{Name: "лосось", Calories: 208, Protein: 20, Fat: 13, Carbs: 0},
	{Name: "тунец", Calories: 132, Protein: 28, Fat: 1, Carbs: 0},
	{Name: "треска", Calories: 82, Protein: 18, Fat: 0.7, Carbs: 0},
	{Name: "селедка", Calories: 246, Protein: 18, Fat: 19, Carbs: 0},
	{Name: "скумбрия", Calories: 205, Protein: 19, Fat: 13, Carbs: 0},
	{Name: "креветки", Calories: 99, Protein: 24, Fat: 0.3, Carbs: 0.2},
	{Name: "кальмар", Calories: 92, Protein: 16, Fat: 1.4, Carbs: 3},
	{Name: "икра", Calories: 264, Protein: 25, Fat: 18, Carbs: 4},

	// Grains and sides
	{Name: "рис", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
	{Name: "гречка", Calories: 110, Protein: 4, Fat: 1, Carbs: 21},
	{Name: "овсянка", Calories: 68, Protein: 2.4, Fat: 1.4, Carbs: 12},
	{Name: "перловка", Calories: 123, Protein: 2.3, Fat: 0.4, Carbs: 28},
	{Name: "пшено", Calories: 119, Protein: 3.5, Fat: 1, Carbs: 23},
	{Name: "макароны", Calories: 158, Protein: 5.8, Fat: 0.9, Carbs: 31},
	{Name: "спагетти", Calories: 158, Protein: 5.8, Fat: 0.9, Carbs: 31},
	{Name: "лапша", Calories: 138, Protein: 4.5, Fat: 0.2, Carbs: 25},
	{Name: "булгур", Calories: 83, Protein: 3.1, Fat: 0.2, Carbs: 19},
	{Name: "киноа", Calories: 120, Protein: 4.4, Fat: 1.9, Carbs: 21},
	{Name: "чечевица", Calories: 116, Protein: 9, Fat: 0.4, Carbs: 20},
	{Name: "фасоль", Calories: 127, Protein: 8.7, Fat: 0.5, Carbs: 23},
	{Name: "горох", Calories: 81, Protein: 5.4, Fat: 0.4, Carbs: 14},
	{Name: "нут", Calories: 164, Protein: 8.9, Fat: 2.6, Carbs: 27},
	{Name: "кукуруза", Calories: 96, Protein: 3.4, Fat: 1.5, Carbs: 21},

	// Vegetables
	{Name: "картофель", Calories: 77, Protein: 2, Fat: 0.1, Carbs: 17},
	{Name: "картофель жареный", Calories: 192, Protein: 2.8, Fat: 9.5, Carbs: 23},
	{Name: "картофельное пюре", Calories: 106, Protein: 2, Fat: 4.2, Carbs: 15},
	{Name: "помидор", Calories: 18, Protein: 0.9, Fat: 0.2, Carbs: 3.9},
	{Name: "огурец", Calories: 15, Protein: 0.7, Fat: 0.1, Carbs: 3.6},
	{Name: "морковь", Calories: 41, Protein: 0.9, Fat: 0.2, Carbs: 10},
	{Name: "свекла", Calories: 43, Protein: 1.6, Fat: 0.2, Carbs: 10},
	{Name: "капуста", Calories: 25, Protein: 1.3, Fat: 0.1, Carbs: 6},
	{Name: "брокколи", Calories: 34, Protein: 2.8, Fat: 0.4, Carbs: 7},
	{Name: "цветная капуста", Calories: 25, Protein: 1.9, Fat: 0.3, Carbs: 5},
	{Name: "кабачок", Calories: 17, Protein: 1.2, Fat: 0.3, Carbs: 3.1},
	{Name: "баклажан", Calories: 25, Protein: 1, Fat: 0.2, Carbs: 6},
	{Name: "перец болгарский", Calories: 27, Protein: 1, Fat: 0.3, Carbs: 6},
	{Name: "лук", Calories: 40, Protein: 1.1, Fat: 0.1, Carbs: 9},
	{Name: "чеснок", Calories: 149, Protein: 6.4, Fat: 0.5, Carbs: 33},
	{Name: "грибы", Calories: 22, Protein: 3.1, Fat: 0.3, Carbs: 3.3},
	{Name: "шампиньоны", Calories: 27, Protein: 4.3, Fat: 1, Carbs: 0.1},
	{Name: "тыква", Calories: 26, Protein: 1, Fat: 0.1, Carbs: 7},
	{Name: "редис", Calories: 16, Protein: 0.7, Fat: 0.1, Carbs: 3.4},
	{Name: "зелень", Calories: 36, Protein: 3.7, Fat: 0.4, Carbs: 7},

	// Dairy and eggs
	{Name: "яйцо", Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1},
	{Name: "яичница", Calories: 196, Protein: 14, Fat: 15, Carbs: 0.8},
	{Name: "омлет", Calories: 184, Protein: 10, Fat: 15, Carbs: 2},
	{Name: "творог", Calories: 101, Protein: 17, Fat: 4, Carbs: 3},
	{Name: "творог обезжиренный", Calories: 71, Protein: 16, Fat: 0.6, Carbs: 1.3},
	{Name: "сыр", Calories: 402, Protein: 25, Fat: 33, Carbs: 1.3},
	{Name: "моцарелла", Calories: 280, Protein: 28, Fat: 17, Carbs: 3.1},
	{Name: "молоко", Calories: 42, Protein: 3.4, Fat: 1, Carbs: 4.8},
	{Name: "кефир", Calories: 41, Protein: 3.3, Fat: 1, Carbs: 4.7},
	{Name: "йогурт", Calories: 59, Protein: 10, Fat: 0.4, Carbs: 3.6},
	{Name: "сметана", Calories: 193, Protein: 2.8, Fat: 19, Carbs: 3.2},
	{Name: "сливки", Calories: 205, Protein: 2.8, Fat: 20, Carbs: 3.7},
	{Name: "масло сливочное", Calories: 717, Protein: 0.9, Fat: 81, Carbs: 0.1},
	{Name: "мороженое", Calories: 207, Protein: 3.5, Fat: 11, Carbs: 24},

	// Bread and bakery
	{Name: "хлеб", Calories: 265, Protein: 9, Fat: 3.2, Carbs: 49},
	{Name: "хлеб черный", Calories: 201, Protein: 6.6, Fat: 1.2, Carbs: 40},
	{Name: "хлеб цельнозерновой", Calories: 247, Protein: 13, Fat: 3.4, Carbs: 41},
	{Name: "батон", Calories: 264, Protein: 7.5, Fat: 2.9, Carbs: 51},
	{Name: "лаваш", Calories: 275, Protein: 9.1, Fat: 1.2, Carbs: 56},
	{Name: "булочка", Calories: 317, Protein: 7.8, Fat: 5.8, Carbs: 58},
	{Name: "сушки", Calories: 331, Protein: 11, Fat: 1.3, Carbs: 70},
	{Name: "блины", Calories: 233, Protein: 6.1, Fat: 12, Carbs: 26},
	{Name: "оладьи", Calories: 294, Protein: 6.6, Fat: 15, Carbs: 31},
	{Name: "сырники", Calories: 183, Protein: 18, Fat: 3.6, Carbs: 18},

	// Prepared dishes
	{Name: "борщ", Calories: 49, Protein: 1.1, Fat: 2.2, Carbs: 6.7},
	{Name: "суп куриный", Calories: 36, Protein: 3.1, Fat: 1.2, Carbs: 2.3},
	{Name: "щи", Calories: 31, Protein: 1, Fat: 2.1, Carbs: 2.5},
	{Name: "плов", Calories: 190, Protein: 4.2, Fat: 6, Carbs: 26},
	{Name: "пельмени", Calories: 275, Protein: 12, Fat: 12, Carbs: 29},
	{Name: "вареники", Calories: 221, Protein: 7.6, Fat: 3.7, Carbs: 40},
	{Name: "пицца", Calories: 266, Protein: 11, Fat: 10, Carbs: 33},
	{Name: "бургер", Calories: 295, Protein: 17, Fat: 14, Carbs: 24},
	{Name: "шаурма", Calories: 170, Protein: 8.5, Fat: 8.9, Carbs: 14},
	{Name: "суши", Calories: 150, Protein: 6, Fat: 4, Carbs: 22},
	{Name: "салат оливье", Calories: 198, Protein: 5.5, Fat: 17, Carbs: 6},
	{Name: "салат цезарь", Calories: 190, Protein: 14, Fat: 12, Carbs: 6},
	{Name: "винегрет", Calories: 130, Protein: 1.6, Fat: 10, Carbs: 8.2},

	// Snacks and sweets
	{Name: "шоколад", Calories: 546, Protein: 5, Fat: 31, Carbs: 61},
	{Name: "шоколад горький", Calories: 539, Protein: 6.2, Fat: 35, Carbs: 48},
	{Name: "конфеты", Calories: 453, Protein: 4.3, Fat: 17, Carbs: 71},
	{Name: "печенье", Calories: 417, Protein: 7.5, Fat: 12, Carbs: 70},
	{Name: "торт", Calories: 407, Protein: 4.7, Fat: 23, Carbs: 45},
	{Name: "мед", Calories: 329, Protein: 0.8, Fat: 0, Carbs: 81},
	{Name: "варенье", Calories: 263, Protein: 0.3, Fat: 0.3, Carbs: 64},
	{Name: "сахар", Calories: 399, Protein: 0, Fat: 0, Carbs: 100},
	{Name: "чипсы", Calories: 536, Protein: 7, Fat: 35, Carbs: 50},
	{Name: "попкорн", Calories: 375, Protein: 12, Fat: 4.3, Carbs: 78},
	{Name: "орехи", Calories: 607, Protein: 20, Fat: 54, Carbs: 21},
	{Name: "миндаль", Calories: 579, Protein: 21, Fat: 50, Carbs: 22},
	{Name: "арахис", Calories: 567, Protein: 26, Fat: 49, Carbs: 16},
	{Name: "семечки", Calories: 578, Protein: 21, Fat: 53, Carbs: 11},
	{Name: "сухофрукты", Calories: 286, Protein: 3, Fat: 0.5, Carbs: 68},
	{Name: "изюм", Calories: 299, Protein: 3.1, Fat: 0.5, Carbs: 79},
	{Name: "курага", Calories: 241, Protein: 3.4, Fat: 0.5, Carbs: 63},

	// Drinks
	{Name: "кофе", Calories: 2, Protein: 0.1, Fat: 0, Carbs: 0},
	{Name: "чай", Calories: 1, Protein: 0, Fat: 0, Carbs: 0.2},
	{Name: "сок апельсиновый", Calories: 45, Protein: 0.7, Fat: 0.2, Carbs: 10},
	{Name: "сок яблочный", Calories: 46, Protein: 0.1, Fat: 0.1, Carbs: 11},
	{Name: "кола", Calories: 42, Protein: 0, Fat: 0, Carbs: 11},
	{Name: "пиво", Calories: 43, Protein: 0.5, Fat: 0, Carbs: 3.6},
	{Name: "вино", Calories: 83, Protein: 0.1, Fat: 0, Carbs: 2.6},
	{Name: "компот", Calories: 60, Protein: 0.2, Fat: 0, Carbs: 15},

	// Oils and condiments
	{Name: "масло растительное", Calories: 884, Protein: 0, Fat: 100, Carbs: 0},
	{Name: "оливковое масло", Calories: 884, Protein: 0, Fat: 100, Carbs: 0},
	{Name: "майонез", Calories: 680, Protein: 1, Fat: 75, Carbs: 2.6},
	{Name: "кетчуп", Calories: 101, Protein: 1.3, Fat: 0.2, Carbs: 24},
	{Name: "соевый соус", Calories: 53, Protein: 8.1, Fat: 0.1, Carbs: 4.9},
}
