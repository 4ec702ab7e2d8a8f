package menu

// SeedCatalog returns the starter catalog used when the durable store holds
// no document yet: four categories and two fully translated sample items.
func SeedCatalog() Catalog {
	return Catalog{
		Categories: []Category{
			{ID: "cat-1", Name: MultilingualText{EN: "Appetizers", AR: "مقبلات", RU: "Закуски", ZH: "小吃"}},
			{ID: "cat-2", Name: MultilingualText{EN: "Main Course", AR: "الطباق الرئيسية", RU: "Основное блюдо", ZH: "主食"}},
			{ID: "cat-3", Name: MultilingualText{EN: "Desserts", AR: "حلويات", RU: "Десерты", ZH: "甜点"}},
			{ID: "cat-4", Name: MultilingualText{EN: "Drinks", AR: "مشروبات", RU: "Напитки", ZH: "饮料"}},
		},
		Items: []FoodItem{
			{
				ID:   "item-1",
				Name: MultilingualText{EN: "Hummus with Pita", AR: "حمص مع خبز بيتا", RU: "Хумус с питой", ZH: "鹰嘴豆泥配皮塔饼"},
				Description: MultilingualText{
					EN: "Classic middle eastern chickpeas dip served with fresh pita.",
					AR: "غمس الحمص الشرق أوسطي الكلاسيكي يقدم مع خبز بيتا الطازج.",
					RU: "Классический ближневосточный соус из нута, подается со свежей питой.",
					ZH: "经典的中东鹰嘴豆泥，搭配新鲜的皮塔饼。",
				},
				Price:        15,
				Category:     "cat-1",
				ImageURL:     "https://images.unsplash.com/photo-1577906030551-5b91627210e7?auto=format&fit=crop&q=80&w=800",
				IsVegan:      true,
				IsVegetarian: true,
				IsAvailable:  true,
			},
			{
				ID:   "item-2",
				Name: MultilingualText{EN: "Mixed Grill", AR: "مشاوي مشكلة", RU: "Ассорти на гриле", ZH: "混合烧烤"},
				Description: MultilingualText{
					EN: "A selection of marinated lamb and chicken grilled to perfection.",
					AR: "مجموعة مختارة من لحم الغنم والدجاج المتبل المشوي بإتقان.",
					RU: "Ассорти из маринованной баранины и курицы, приготовленное на гриле.",
					ZH: "精选腌制羊肉和鸡肉，烤至完美。",
				},
				Price:          45,
				Category:       "cat-2",
				ImageURL:       "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&q=80&w=800",
				IsSpicy:        true,
				IsAvailable:    true,
				IsSpecialOffer: true,
			},
		},
	}
}
