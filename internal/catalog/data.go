package catalog

import "sajhnaa_back_end/internal/models"

// Catalogue statique Sajhnaa — la source de vérité des produits et catégories.
// Les prix sont en roupies (INR).
var products = []models.Product{
	// BAGUES
	{
		ID:            1,
		Name:          "Eternal Solitaire Ring",
		Category:      "rings",
		Price:         45999,
		OriginalPrice: 52999,
		Rating:        4.9,
		Reviews:       234,
		Image:         "https://images.unsplash.com/photo-1605100804763-047af5fef207?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#C0C0C0", "#E8B4B8"},
		ColorNames:    []string{"Yellow Gold", "White Gold", "Rose Gold"},
		Sizes:         []string{"5", "6", "7", "8", "9"},
		Description:   "A timeless solitaire diamond ring set in 18K gold. The brilliant-cut diamond catches light from every angle, symbolizing eternal love and commitment.",
		Features:      []string{"18K Hallmarked Gold", "IGI Certified Diamond", "0.5 Carat Brilliant Cut", "VVS1 Clarity", "Lifetime Exchange Policy"},
		Material:      "18K Gold with Natural Diamond",
		Badge:         "Bestseller",
		ModelPath:     "/models/ring.glb",
	},
	{
		ID:            2,
		Name:          "Twisted Infinity Band",
		Category:      "rings",
		Price:         18999,
		OriginalPrice: 22999,
		Rating:        4.7,
		Reviews:       189,
		Image:         "https://images.unsplash.com/photo-1589128777073-263566ae5e4d?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#E8B4B8", "#FFD700"},
		ColorNames:    []string{"Rose Gold", "Yellow Gold"},
		Sizes:         []string{"5", "6", "7", "8", "9"},
		Description:   "An elegant twisted infinity band symbolizing never-ending love. Delicate pavé diamonds add sparkle to this modern classic.",
		Features:      []string{"14K Hallmarked Gold", "Natural Diamonds", "Pavé Setting", "Comfort Fit", "BIS Hallmarked"},
		Material:      "14K Gold with Diamond Pavé",
		Badge:         "Trending",
		ModelPath:     "/models/band.glb",
	},

	// COLLIERS
	{
		ID:            3,
		Name:          "Celestial Pendant Necklace",
		Category:      "necklaces",
		Price:         32999,
		OriginalPrice: 38999,
		Rating:        4.8,
		Reviews:       312,
		Image:         "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#C0C0C0", "#E8B4B8"},
		ColorNames:    []string{"Yellow Gold", "White Gold", "Rose Gold"},
		Sizes:         []string{"16\"", "18\"", "20\""},
		Description:   "A celestial-inspired pendant with a brilliant diamond star, suspended on a delicate chain. Perfect for everyday elegance.",
		Features:      []string{"18K Hallmarked Gold", "Natural Diamond Pendant", "Adjustable Chain Length", "Lobster Clasp", "Gift Box Included"},
		Material:      "18K Gold with Diamond",
		Badge:         "New Arrival",
		ModelPath:     "/models/necklace.glb",
	},
	{
		ID:            4,
		Name:          "Layered Pearl Chain",
		Category:      "necklaces",
		Price:         15999,
		OriginalPrice: 19999,
		Rating:        4.6,
		Reviews:       167,
		Image:         "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#C0C0C0"},
		ColorNames:    []string{"Yellow Gold", "White Gold"},
		Sizes:         []string{"16\"", "18\""},
		Description:   "A sophisticated multi-layered necklace featuring freshwater pearls on delicate gold chains. Effortless elegance for any occasion.",
		Features:      []string{"14K Hallmarked Gold", "Freshwater Pearls", "Multi-Layer Design", "Tarnish Resistant", "Adjustable Length"},
		Material:      "14K Gold with Freshwater Pearls",
		ModelPath:     "/models/chain.glb",
	},

	// BOUCLES D'OREILLES
	{
		ID:            5,
		Name:          "Diamond Drop Earrings",
		Category:      "earrings",
		Price:         28999,
		OriginalPrice: 34999,
		Rating:        4.9,
		Reviews:       276,
		Image:         "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#C0C0C0", "#E8B4B8"},
		ColorNames:    []string{"Yellow Gold", "White Gold", "Rose Gold"},
		Sizes:         []string{"Standard"},
		Description:   "Exquisite diamond drop earrings that dance with light. Each earring features a cascade of brilliant-cut diamonds set in lustrous gold.",
		Features:      []string{"18K Hallmarked Gold", "IGI Certified Diamonds", "Push-Back Closure", "Total 0.6 Carat", "Matching Set Available"},
		Material:      "18K Gold with Natural Diamonds",
		Badge:         "Bestseller",
		ModelPath:     "/models/earrings.glb",
	},
	{
		ID:            6,
		Name:          "Jhumka Heritage Earrings",
		Category:      "earrings",
		Price:         22999,
		OriginalPrice: 26999,
		Rating:        4.8,
		Reviews:       198,
		Image:         "https://images.unsplash.com/photo-1635767798638-3e25273a8236?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#E8B4B8"},
		ColorNames:    []string{"Antique Gold", "Rose Gold"},
		Sizes:         []string{"Standard"},
		Description:   "Handcrafted traditional jhumka earrings with intricate filigree work and tiny pearl accents. A perfect blend of heritage and modern design.",
		Features:      []string{"22K Hallmarked Gold", "Hand-Crafted Filigree", "Pearl Accents", "Lightweight Design", "Cultural Heritage Piece"},
		Material:      "22K Gold with Pearls",
		Badge:         "Heritage",
		ModelPath:     "/models/jhumka.glb",
	},

	// BRACELETS
	{
		ID:            7,
		Name:          "Tennis Diamond Bracelet",
		Category:      "bracelets",
		Price:         68999,
		OriginalPrice: 79999,
		Rating:        4.9,
		Reviews:       145,
		Image:         "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#C0C0C0"},
		ColorNames:    []string{"Yellow Gold", "White Gold"},
		Sizes:         []string{"6.5\"", "7\"", "7.5\""},
		Description:   "A classic tennis bracelet featuring a continuous line of brilliant-cut diamonds in a prong setting. The epitome of luxury on your wrist.",
		Features:      []string{"18K Hallmarked Gold", "IGI Certified Diamonds", "Total 3 Carat", "Box Clasp with Safety", "Lifetime Warranty"},
		Material:      "18K Gold with Natural Diamonds",
		Badge:         "Premium",
		ModelPath:     "/models/bracelet.glb",
	},
	{
		ID:            8,
		Name:          "Charm Kada Bracelet",
		Category:      "bracelets",
		Price:         24999,
		OriginalPrice: 28999,
		Rating:        4.7,
		Reviews:       203,
		Image:         "https://images.unsplash.com/photo-1611085583191-a3b1a30a8a0a?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#E8B4B8"},
		ColorNames:    []string{"Yellow Gold", "Rose Gold"},
		Sizes:         []string{"2.4\"", "2.6\"", "2.8\""},
		Description:   "A modern take on the traditional kada, adorned with diamond-studded charms. Wear it solo or stack it for a bold statement.",
		Features:      []string{"18K Hallmarked Gold", "Natural Diamond Charms", "Open Kada Design", "Adjustable Fit", "Comes with Pouch"},
		Material:      "18K Gold with Diamonds",
		Badge:         "New",
		ModelPath:     "/models/kada.glb",
	},

	// PENDENTIFS
	{
		ID:            9,
		Name:          "Evil Eye Diamond Pendant",
		Category:      "pendants",
		Price:         12999,
		OriginalPrice: 15999,
		Rating:        4.6,
		Reviews:       321,
		Image:         "https://images.unsplash.com/photo-1615484477778-ca3b779401d5?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700", "#C0C0C0", "#E8B4B8"},
		ColorNames:    []string{"Yellow Gold", "White Gold", "Rose Gold"},
		Sizes:         []string{"With 16\" Chain", "With 18\" Chain", "Pendant Only"},
		Description:   "A protective evil eye pendant set with blue sapphire and diamonds. Stylish, meaningful, and perfect for daily wear.",
		Features:      []string{"14K Hallmarked Gold", "Natural Blue Sapphire", "Diamond Accents", "Hypoallergenic", "Gift Wrapped"},
		Material:      "14K Gold with Sapphire & Diamonds",
		Badge:         "Popular",
		ModelPath:     "/models/pendant.glb",
	},
	{
		ID:            10,
		Name:          "Heart Locket Pendant",
		Category:      "pendants",
		Price:         9999,
		OriginalPrice: 12999,
		Rating:        4.5,
		Reviews:       445,
		Image:         "https://images.unsplash.com/photo-1617038220319-276d3cfab638?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#E8B4B8", "#FFD700", "#C0C0C0"},
		ColorNames:    []string{"Rose Gold", "Yellow Gold", "Silver"},
		Sizes:         []string{"With 16\" Chain", "With 18\" Chain", "Pendant Only"},
		Description:   "A romantic heart locket that opens to hold your cherished photo. Adorned with tiny diamond accents on the surface.",
		Features:      []string{"14K Hallmarked Gold", "Opens for Photo", "Diamond Surface Accents", "Spring-Ring Clasp", "Personalization Available"},
		Material:      "14K Gold with Diamond Accents",
		Badge:         "Gift Pick",
		ModelPath:     "/models/locket.glb",
	},

	// BANGLES
	{
		ID:            11,
		Name:          "Polki Bridal Bangle Set",
		Category:      "bangles",
		Price:         89999,
		OriginalPrice: 105999,
		Rating:        4.9,
		Reviews:       87,
		Image:         "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#FFD700"},
		ColorNames:    []string{"Traditional Gold"},
		Sizes:         []string{"2.4\"", "2.6\"", "2.8\""},
		Description:   "A stunning set of 4 bridal bangles with uncut polki diamonds and intricate meenakari enamel work. Heirloom-quality craftsmanship.",
		Features:      []string{"22K Hallmarked Gold", "Uncut Polki Diamonds", "Meenakari Enamel", "Set of 4 Bangles", "Certificate of Authenticity"},
		Material:      "22K Gold with Polki Diamonds",
		Badge:         "Bridal",
		ModelPath:     "/models/bangles.glb",
	},
	{
		ID:            12,
		Name:          "Sleek Platinum Bangle",
		Category:      "bangles",
		Price:         55999,
		OriginalPrice: 62999,
		Rating:        4.8,
		Reviews:       134,
		Image:         "https://images.unsplash.com/photo-1512163143273-bde0e3cc7407?q=80&w=1000&auto=format&fit=crop",
		Colors:        []string{"#E5E4E2", "#FFD700"},
		ColorNames:    []string{"Platinum", "White Gold"},
		Sizes:         []string{"2.4\"", "2.6\"", "2.8\""},
		Description:   "A minimalist platinum bangle with a single row of channel-set diamonds. Modern luxury for the contemporary woman.",
		Features:      []string{"950 Platinum", "Channel-Set Diamonds", "Total 1.2 Carat", "Hinged with Safety Clasp", "Platinum Hallmarked"},
		Material:      "950 Platinum with Natural Diamonds",
		Badge:         "Luxury",
		ModelPath:     "/models/bangle.glb",
	},
}

var categories = []models.Category{
	{ID: "rings", Name: "Rings", Image: "https://images.unsplash.com/photo-1605100804763-047af5fef207?q=80&w=500&auto=format&fit=crop", Count: 2},
	{ID: "necklaces", Name: "Necklaces", Image: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?q=80&w=500&auto=format&fit=crop", Count: 2},
	{ID: "earrings", Name: "Earrings", Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?q=80&w=500&auto=format&fit=crop", Count: 2},
	{ID: "bracelets", Name: "Bracelets", Image: "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?q=80&w=500&auto=format&fit=crop", Count: 2},
	{ID: "pendants", Name: "Pendants", Image: "https://images.unsplash.com/photo-1615484477778-ca3b779401d5?q=80&w=500&auto=format&fit=crop", Count: 2},
	{ID: "bangles", Name: "Bangles", Image: "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?q=80&w=500&auto=format&fit=crop", Count: 2},
}

// Suggestions "souvent achetés ensemble", table figée éditée à la main.
var frequentlyBoughtTogether = map[int64][]int64{
	1:  {5, 3},  // Bague → Boucles + Collier
	2:  {9, 4},  // Alliance → Pendentif + Collier
	3:  {5, 9},  // Collier → Boucles + Pendentif
	4:  {6, 10}, // Chaîne perles → Jhumkas + Médaillon
	5:  {1, 3},  // Boucles pendantes → Bague + Collier
	6:  {11, 3}, // Jhumkas → Bangles + Collier
	7:  {1, 5},  // Bracelet tennis → Bague + Boucles
	8:  {6, 11}, // Kada → Jhumkas + Bangles
	9:  {4, 6},  // Œil protecteur → Chaîne perles + Jhumkas
	10: {2, 5},  // Médaillon cœur → Bague + Boucles
	11: {6, 1},  // Bangles polki → Jhumkas + Bague
	12: {7, 5},  // Bangle platine → Bracelet tennis + Boucles
}
