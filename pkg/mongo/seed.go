package mongo

import "maasaicraft.co.ke/shop/api/pkg/models"

// defaultCatalog is the launch inventory for the store.
var defaultCatalog = []models.Product{
	{
		ID:          1,
		Name:        "Traditional Kiondo - Large",
		Price:       2500,
		Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=400&fit=crop",
		Category:    "Kiondos",
		Description: "Hand-woven large sisal basket with leather handles",
		Sizes:       []string{"Large"},
		InStock:     15,
	},
	{
		ID:          2,
		Name:        "Traditional Kiondo - Medium",
		Price:       1800,
		Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=400&fit=crop",
		Category:    "Kiondos",
		Description: "Hand-woven medium sisal basket perfect for shopping",
		Sizes:       []string{"Medium"},
		InStock:     20,
	},
	{
		ID:          3,
		Name:        "Traditional Kiondo - Small",
		Price:       1200,
		Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=400&fit=crop",
		Category:    "Kiondos",
		Description: "Compact sisal basket for everyday use",
		Sizes:       []string{"Small"},
		InStock:     25,
	},
	{
		ID:          4,
		Name:        "Maasai Leather Sandals - Men",
		Price:       3200,
		Image:       "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=400&fit=crop",
		Category:    "Sandals",
		Description: "Authentic Maasai leather sandals handcrafted for men",
		Sizes:       []string{"40", "41", "42", "43", "44", "45"},
		InStock:     12,
	},
	{
		ID:          5,
		Name:        "Maasai Leather Sandals - Women",
		Price:       2800,
		Image:       "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=400&fit=crop",
		Category:    "Sandals",
		Description: "Elegant Maasai leather sandals for women",
		Sizes:       []string{"36", "37", "38", "39", "40", "41"},
		InStock:     18,
	},
	{
		ID:          6,
		Name:        "Beaded Maasai Necklace",
		Price:       1500,
		Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
		Category:    "Jewelry",
		Description: "Colorful traditional Maasai beaded necklace",
		Sizes:       []string{"One Size"},
		InStock:     30,
	},
	{
		ID:          7,
		Name:        "Beaded Maasai Bracelet Set",
		Price:       800,
		Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
		Category:    "Jewelry",
		Description: "Set of 3 traditional Maasai beaded bracelets",
		Sizes:       []string{"One Size"},
		InStock:     40,
	},
	{
		ID:          8,
		Name:        "Maasai Beaded Keychain - Traditional",
		Price:       400,
		Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
		Category:    "Keychains",
		Description: "Handcrafted beaded keychain with traditional patterns",
		Sizes:       []string{"One Size"},
		InStock:     50,
	},
	{
		ID:          9,
		Name:        "Maasai Warrior Shield Keychain",
		Price:       600,
		Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
		Category:    "Keychains",
		Description: "Miniature warrior shield keychain with authentic Maasai patterns",
		Sizes:       []string{"One Size"},
		InStock:     35,
	},
	{
		ID:          10,
		Name:        "Maasai Animal Spirit Keychain Set",
		Price:       800,
		Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
		Category:    "Keychains",
		Description: "Set of 3 keychains featuring lion, elephant, and buffalo designs",
		Sizes:       []string{"One Size"},
		InStock:     25,
	},
	{
		ID:          11,
		Name:        "Maasai Leather & Bead Keychain",
		Price:       700,
		Image:       "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=400&fit=crop",
		Category:    "Keychains",
		Description: "Premium leather keychain with colorful Maasai beadwork",
		Sizes:       []string{"One Size"},
		InStock:     40,
	},
}
