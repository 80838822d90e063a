package catalog

// Default returns the stock storefront catalog.
func Default() *Catalog {
	return New(products)
}

var products = []Product{
	{
		ID:          "1",
		Name:        "iPhone 15 Pro",
		Brand:       "Apple",
		Price:       999,
		Description: "The first iPhone with an aerospace-grade titanium design, using the same alloy that spacecraft use for missions to Mars.",
		Specs: Specs{
			Screen:    `6.1" Super Retina XDR`,
			Processor: "A17 Pro chip",
			RAM:       "8GB",
			Storage:   "128GB/256GB/512GB/1TB",
			Camera:    "48MP Main | Ultra Wide | Telephoto",
			Battery:   "Up to 23 hours video playback",
		},
		Image: "https://picsum.photos/seed/iphone15pro/800/800",
		Color: "Natural Titanium",
		IsNew: true,
	},
	{
		ID:          "2",
		Name:        "Samsung Galaxy S24 Ultra",
		Brand:       "Samsung",
		Price:       1299,
		Description: "The ultimate Galaxy Ultra experience, now with Galaxy AI. Unleash new levels of creativity, productivity and possibility.",
		Specs: Specs{
			Screen:    `6.8" QHD+ Dynamic AMOLED 2X`,
			Processor: "Snapdragon 8 Gen 3",
			RAM:       "12GB",
			Storage:   "256GB/512GB/1TB",
			Camera:    "200MP Main | 50MP Periscope | 10MP Telephoto | 12MP Ultra Wide",
			Battery:   "5000mAh",
		},
		Image: "https://picsum.photos/seed/s24ultra/800/800",
		Color: "Titanium Gray",
		IsNew: true,
	},
	{
		ID:          "3",
		Name:        "Google Pixel 8 Pro",
		Brand:       "Google",
		Price:       899,
		Description: "The all-pro phone engineered by Google. It's sleek, sophisticated, and has the most advanced Pixel Camera yet.",
		Specs: Specs{
			Screen:    `6.7" Super Actua display`,
			Processor: "Google Tensor G3",
			RAM:       "12GB",
			Storage:   "128GB/256GB/512GB/1TB",
			Camera:    "50MP Main | 48MP Ultra Wide | 48MP Telephoto",
			Battery:   "5050mAh",
		},
		Image: "https://picsum.photos/seed/pixel8pro/800/800",
		Color: "Bay",
		IsNew: true,
	},
	{
		ID:          "4",
		Name:        "OnePlus 12",
		Brand:       "OnePlus",
		Price:       799,
		Description: "Smooth Beyond Belief. The OnePlus 12 defines the new gold standard for flagship performance and elegance.",
		Specs: Specs{
			Screen:    `6.82" QHD+ ProXDR`,
			Processor: "Snapdragon 8 Gen 3",
			RAM:       "12GB/16GB",
			Storage:   "256GB/512GB",
			Camera:    "50MP Main | 64MP Periscope | 48MP Ultra Wide",
			Battery:   "5400mAh",
		},
		Image: "https://picsum.photos/seed/oneplus12/800/800",
		Color: "Silky Black",
	},
	{
		ID:          "5",
		Name:        "Xiaomi 14 Ultra",
		Brand:       "Xiaomi",
		Price:       1199,
		Description: "A legendary design with a Leica quad camera system. Photography redefined.",
		Specs: Specs{
			Screen:    `6.73" LTPO AMOLED`,
			Processor: "Snapdragon 8 Gen 3",
			RAM:       "16GB",
			Storage:   "512GB",
			Camera:    "50MP Quad Camera System (Leica)",
			Battery:   "5000mAh",
		},
		Image: "https://picsum.photos/seed/xiaomi14ultra/800/800",
		Color: "Black",
	},
	{
		ID:          "6",
		Name:        "Sony Xperia 1 V",
		Brand:       "Sony",
		Price:       1099,
		Description: "Unprecedented image quality with a next-generation sensor. For creators, by creators.",
		Specs: Specs{
			Screen:    `6.5" 4K HDR OLED 21:9`,
			Processor: "Snapdragon 8 Gen 2",
			RAM:       "12GB",
			Storage:   "256GB",
			Camera:    "48MP Main | 12MP Telephoto | 12MP Ultra Wide",
			Battery:   "5000mAh",
		},
		Image: "https://picsum.photos/seed/xperia1v/800/800",
		Color: "Khaki Green",
	},
}
