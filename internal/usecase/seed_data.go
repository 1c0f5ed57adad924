package usecase

// seedで入れる固定データ
func InitialProducts() []CreateProductInput {
	return []CreateProductInput{
		{
			Title:       "Men’s Chill Crew Neck Sweatshirt",
			Description: strPtr("Introducing the Tesla Chill Collection. The Men’s Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior for comfort in any season."),
			Price:       floatPtr(75),
			Stock:       intPtr(7),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Slug:        strPtr("mens_chill_crew_neck_sweatshirt"),
			Gender:      "men",
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Description: strPtr("The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons."),
			Price:       floatPtr(200),
			Stock:       intPtr(5),
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Slug:        strPtr("men_quilted_shirt_jacket"),
			Gender:      "men",
			Tags:        []string{"jacket"},
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
			Description: strPtr("Introducing the Tesla Raven Collection. The Men's Raven Lightweight Zip Up Bomber has a premium, modern silhouette made from a sustainable bamboo cotton blend."),
			Price:       floatPtr(130),
			Stock:       intPtr(10),
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Slug:        strPtr("men_raven_lightweight_zip_up_bomber_jacket"),
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Long Sleeve Tee",
			Description: strPtr("Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Men's Turbine Long Sleeve Tee features a subtle, water-based T logo."),
			Price:       floatPtr(45),
			Stock:       intPtr(50),
			Sizes:       []string{"XS", "S", "M", "L"},
			Slug:        strPtr("men_turbine_long_sleeve_tee"),
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Short Sleeve Tee",
			Description: strPtr("Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Men's Turbine Short Sleeve Tee features a subtle, water-based Tesla wordmark."),
			Price:       floatPtr(40),
			Stock:       intPtr(50),
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Slug:        strPtr("men_turbine_short_sleeve_tee"),
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"1741416-00-A_0_2000.jpg", "1741416-00-A_1.jpg"},
		},
		{
			Title:       "Men's Cybertruck Owl Tee",
			Description: strPtr("Designed for comfort, the Cybertruck Owl Tee is made from 100% cotton and features our signature Cybertruck icon on the back."),
			Price:       floatPtr(35),
			Stock:       intPtr(0),
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Slug:        strPtr("men_cybertruck_owl_tee"),
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"7654393-00-A_2_2000.jpg", "7654393-00-A_3.jpg"},
		},
		{
			Title:       "Men's Solar Roof Tee",
			Description: strPtr("Inspired by our fully integrated home solar and storage system, the Tesla Solar Roof Tee advocates for clean, sustainable energy wherever you go."),
			Price:       floatPtr(35),
			Stock:       intPtr(15),
			Sizes:       []string{"XS", "S", "XL", "XXL"},
			Slug:        strPtr("men_solar_roof_tee"),
			Gender:      "men",
			Tags:        []string{"shirt"},
			Images:      []string{"1703767-00-A_0_2000.jpg", "1703767-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Description: strPtr("The Women's Cropped Puffer features a uniquely cropped silhouette for the perfect, modern style while on the go during the cozy season ahead."),
			Price:       floatPtr(225),
			Stock:       intPtr(85),
			Sizes:       []string{"XS", "S", "M"},
			Slug:        strPtr("women_cropped_puffer_jacket"),
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
		},
		{
			Title:       "Women's Chill Half Zip Cropped Hoodie",
			Description: strPtr("Introducing the Tesla Chill Collection. The Women’s Chill Half Zip Cropped Hoodie has a premium, soft fleece exterior and cropped silhouette for comfort in everyday lifestyle."),
			Price:       floatPtr(130),
			Stock:       intPtr(10),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Slug:        strPtr("women_chill_half_zip_cropped_hoodie"),
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
		},
		{
			Title:       "Women's Raven Slouchy Crew Sweatshirt",
			Description: strPtr("Introducing the Tesla Raven Collection. The Women's Raven Slouchy Crew Sweatshirt has a premium, relaxed silhouette made from a sustainable bamboo cotton blend."),
			Price:       floatPtr(110),
			Stock:       intPtr(9),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Slug:        strPtr("women_raven_slouchy_crew_sweatshirt"),
			Gender:      "women",
			Tags:        []string{"hoodie"},
			Images:      []string{"1740260-00-A_0_2000.jpg", "1740260-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cybertruck Long Sleeve Tee",
			Description: strPtr("Designed for fit, comfort and style, the Tesla Kids Cybertruck Long Sleeve Tee features a graffiti-style illustration of our Cybertruck."),
			Price:       floatPtr(30),
			Stock:       intPtr(10),
			Sizes:       []string{"XS", "S", "M"},
			Slug:        strPtr("kids_cybertruck_long_sleeve_tee"),
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"1742693-00-A_0_2000.jpg", "1742693-00-A_1.jpg"},
		},
		{
			Title:       "Kids Scribble T Logo Tee",
			Description: strPtr("The Kids Scribble T Logo Tee is made from 100% Peruvian cotton and features a Tesla T sketched logo for every young artist to wear."),
			Price:       floatPtr(25),
			Stock:       intPtr(0),
			Sizes:       []string{"XS", "S", "M"},
			Slug:        strPtr("kids_scribble_t_logo_tee"),
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"8529312-00-A_0_2000.jpg", "8529312-00-A_1.jpg"},
		},
		{
			Title:       "Made on Earth by Humans Onesie",
			Description: strPtr("Show your commitment to sustainable energy with this cheeky onesie for your young one. Note: Onesie will not make your baby cry."),
			Price:       floatPtr(30),
			Stock:       intPtr(16),
			Sizes:       []string{"XS", "S"},
			Slug:        strPtr("made_on_earth_by_humans_onesie"),
			Gender:      "kid",
			Tags:        []string{"shirt"},
			Images:      []string{"8529387-00-A_0_2000.jpg", "8529387-00-A_1.jpg"},
		},
		{
			Title:       "Unisex 3D Large Wordmark Tee",
			Description: strPtr("Designed for fit, comfort and style, the Unisex 3D Large Wordmark Tee is made from 100% Peruvian cotton with a 3D silicone-printed Tesla wordmark."),
			Price:       floatPtr(35),
			Stock:       intPtr(15),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Slug:        strPtr("unisex_3d_large_wordmark_tee"),
			Gender:      "unisex",
			Tags:        []string{"shirt"},
			Images:      []string{"1741426-00-A_0_2000.jpg", "1741426-00-A_1.jpg"},
		},
		{
			Title:       "Plaid Mode Tee",
			Description: strPtr("Inspired by our popular home battery, the Plaid Mode Tee is made from 100% cotton and features a Plaid logo on the front."),
			Price:       floatPtr(35),
			Stock:       intPtr(0),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Slug:        strPtr("plaid_mode_tee"),
			Gender:      "unisex",
			Tags:        []string{"shirt"},
			Images:      []string{"1741436-00-A_0_2000.jpg", "1741436-00-A_1.jpg"},
		},
	}
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }
