package knowledge

// Defaults returns the canonical built-in table set. The lexicons below are
// the consolidated single source of truth; production deployments tune them
// through the YAML overlay without rebuilding.
func Defaults() *Base {
	return &Base{
		Version: "2026.08",

		Scripts: []ScriptRange{
			{Script: "Latin", Language: "English", Lo: 'A', Hi: 'Z'},
			{Script: "Latin", Language: "English", Lo: 'a', Hi: 'z'},
			{Script: "Devanagari", Language: "Hindi", Lo: 0x0900, Hi: 0x097F},
			{Script: "Bengali", Language: "Bengali", Lo: 0x0980, Hi: 0x09FF},
			{Script: "Gurmukhi", Language: "Punjabi", Lo: 0x0A00, Hi: 0x0A7F},
			{Script: "Gujarati", Language: "Gujarati", Lo: 0x0A80, Hi: 0x0AFF},
			{Script: "Oriya", Language: "Odia", Lo: 0x0B00, Hi: 0x0B7F},
			{Script: "Tamil", Language: "Tamil", Lo: 0x0B80, Hi: 0x0BFF},
			{Script: "Telugu", Language: "Telugu", Lo: 0x0C00, Hi: 0x0C7F},
			{Script: "Kannada", Language: "Kannada", Lo: 0x0C80, Hi: 0x0CFF},
			{Script: "Malayalam", Language: "Malayalam", Lo: 0x0D00, Hi: 0x0D7F},
		},

		// Romanized words are attributed to the first language that lists
		// them, so Hindi leads.
		Romanized: []RomanizedLexicon{
			{Language: "Hindi", Words: []string{
				"ki", "ka", "ke", "hai", "ho", "hoga", "hogi", "nahi", "kya",
				"yaar", "bhai", "ji", "sab", "kuch", "accha", "acha", "theek",
				"bahut", "shubhkamnaye", "namaste", "dhanyavad", "aur", "mera",
				"tera", "apna", "karo", "chalo", "arre", "matlab", "bas",
				"abhi", "kal", "aaj", "ghar", "paisa", "kitna",
			}},
			{Language: "Tamil", Words: []string{
				"vanakkam", "nanri", "enna", "machan", "machi", "romba",
				"seri", "illa", "vanga", "periya", "chinna", "sapadu",
			}},
			{Language: "Bengali", Words: []string{
				"bhalo", "kemon", "achen", "dada", "didi", "khub", "darun",
				"ektu", "onek", "shundor",
			}},
			{Language: "Punjabi", Words: []string{
				"paaji", "veere", "changa", "kiddan", "tussi", "vadhiya",
				"balle", "chak", "sohna", "twada",
			}},
		},

		MixParticles: []string{
			"yaar", "bhai", "ji", "hai", "na", "arre", "matlab", "bas",
			"accha", "bro",
		},

		UrbanKeywords: []string{
			"metro", "uber", "swiggy", "zomato", "startup", "office",
			"traffic", "mall", "gym", "cafe", "flat", "wifi", "corporate",
		},
		RuralKeywords: []string{
			"kheti", "fasal", "gaon", "village", "mandi", "panchayat",
			"tractor", "khet", "bail", "sarpanch", "crop",
		},

		Regions: map[string][]Marker{
			"North India": {
				{Term: "yaar", Slang: true},
				{Term: "bhai", Slang: true},
				{Term: "jugaad", Slang: true},
				{Term: "scene hai", Slang: true},
				{Term: "dilli", Slang: false},
				{Term: "chole bhature", Slang: false},
				{Term: "bhangra", Slang: false},
				{Term: "sarson", Slang: false},
				{Term: "lassi", Slang: false},
			},
			"South India": {
				{Term: "machan", Slang: true},
				{Term: "da", Slang: true},
				{Term: "super", Slang: true},
				{Term: "anna", Slang: true},
				{Term: "dosa", Slang: false},
				{Term: "filter coffee", Slang: false},
				{Term: "kollywood", Slang: false},
				{Term: "carnatic", Slang: false},
			},
			"West India": {
				{Term: "bindaas", Slang: true},
				{Term: "bole toh", Slang: true},
				{Term: "vada pav", Slang: false},
				{Term: "dhokla", Slang: false},
				{Term: "garba", Slang: false},
				{Term: "local train", Slang: false},
			},
			"East India": {
				{Term: "dada", Slang: true},
				{Term: "khub bhalo", Slang: true},
				{Term: "rosogolla", Slang: false},
				{Term: "durga puja", Slang: false},
				{Term: "adda", Slang: true},
				{Term: "maach", Slang: false},
			},
			"Mumbai": {
				{Term: "bindaas", Slang: true},
				{Term: "bole toh", Slang: true},
				{Term: "tapori", Slang: true},
				{Term: "vada pav", Slang: false},
				{Term: "local train", Slang: false},
				{Term: "bambai", Slang: true},
			},
			"Punjab": {
				{Term: "paaji", Slang: true},
				{Term: "veere", Slang: true},
				{Term: "balle balle", Slang: true},
				{Term: "makki di roti", Slang: false},
				{Term: "bhangra", Slang: false},
				{Term: "pind", Slang: false},
			},
		},

		Neutrality: map[string][]WeightedTerm{
			"religion": {
				{Term: "kafir", Weight: 40},
				{Term: "jihad", Weight: 30},
				{Term: "hindu rashtra", Weight: 35},
				{Term: "anti-hindu", Weight: 35},
				{Term: "anti-muslim", Weight: 35},
				{Term: "forced conversion", Weight: 25},
				{Term: "sickular", Weight: 30},
			},
			"caste": {
				{Term: "upper caste", Weight: 25},
				{Term: "lower caste", Weight: 25},
				{Term: "quota", Weight: 15},
				{Term: "reservation", Weight: 15},
				{Term: "casteist", Weight: 30},
				{Term: "untouchable", Weight: 35},
			},
			"gender": {
				{Term: "feminazi", Weight: 35},
				{Term: "gold digger", Weight: 30},
				{Term: "dowry", Weight: 20},
				{Term: "patriarchy", Weight: 15},
				{Term: "item", Weight: 15},
				{Term: "simp", Weight: 10},
			},
		},

		Festivals: []Festival{
			{Name: "Diwali", Months: []int{10, 11}, Importance: 0.9, SentimentBoost: 0.8},
			{Name: "Holi", Months: []int{3}, Importance: 0.85, SentimentBoost: 0.8},
			{Name: "Eid", Months: []int{3, 4}, Importance: 0.85, SentimentBoost: 0.75},
			{Name: "Navratri", Months: []int{9, 10}, Importance: 0.8, SentimentBoost: 0.7},
			{Name: "Durga Puja", Months: []int{9, 10}, Importance: 0.85, SentimentBoost: 0.75},
			{Name: "Ganesh Chaturthi", Months: []int{8, 9}, Importance: 0.8, SentimentBoost: 0.7},
			{Name: "Onam", Months: []int{8, 9}, Importance: 0.75, SentimentBoost: 0.7},
			{Name: "Pongal", Months: []int{1}, Importance: 0.75, SentimentBoost: 0.7},
			{Name: "Makar Sankranti", Months: []int{1}, Importance: 0.7, SentimentBoost: 0.65},
			{Name: "Raksha Bandhan", Months: []int{8}, Importance: 0.7, SentimentBoost: 0.65},
			{Name: "Baisakhi", Months: []int{4}, Importance: 0.7, SentimentBoost: 0.65},
			{Name: "Karwa Chauth", Months: []int{10, 11}, Importance: 0.6, SentimentBoost: 0.6},
			{Name: "Christmas", Months: []int{12}, Importance: 0.7, SentimentBoost: 0.7},
		},
		GiftingKeywords: []string{
			"gift", "gifting", "shagun", "shopping", "sale", "offer",
			"mithai", "sweets", "hamper", "surprise",
		},
		FamilyKeywords: []string{
			"family", "parivaar", "ghar aana", "maa", "papa", "relatives",
			"gathering", "reunion", "cousins", "saath",
		},

		SensitiveTopics: []SensitiveTopic{
			{Term: "beef", RiskWeight: 25, Category: "religious", Description: "religious dietary flashpoint"},
			{Term: "cow slaughter", RiskWeight: 30, Category: "religious", Description: "cattle politics trigger"},
			{Term: "love jihad", RiskWeight: 35, Category: "religious", Description: "interfaith conspiracy trope"},
			{Term: "mandir masjid", RiskWeight: 25, Category: "religious", Description: "temple-mosque dispute reference"},
			{Term: "blasphemy", RiskWeight: 25, Category: "religious", Description: "religious insult framing"},
			{Term: "kashmir", RiskWeight: 25, Category: "political", Description: "territorial dispute reference"},
			{Term: "article 370", RiskWeight: 25, Category: "political", Description: "abrogation debate reference"},
			{Term: "caa", RiskWeight: 25, Category: "political", Description: "citizenship law controversy"},
			{Term: "nrc", RiskWeight: 25, Category: "political", Description: "citizenship register controversy"},
			{Term: "pakistan", RiskWeight: 20, Category: "political", Description: "cross-border reference"},
			{Term: "election rigging", RiskWeight: 30, Category: "political", Description: "electoral integrity allegation"},
			{Term: "honor killing", RiskWeight: 30, Category: "social", Description: "caste/community violence"},
			{Term: "mob lynching", RiskWeight: 30, Category: "social", Description: "communal violence reference"},
			{Term: "caste discrimination", RiskWeight: 25, Category: "social", Description: "caste conflict framing"},
			{Term: "farmer suicide", RiskWeight: 25, Category: "social", Description: "agrarian distress reference"},
			{Term: "dowry death", RiskWeight: 30, Category: "social", Description: "gender violence reference"},
		},
		AdultKeywords: []string{
			"whiskey", "vodka", "beer", "drunk", "hookah", "cigarette",
			"gamble", "betting", "18+",
		},

		ViralKeywords: []string{
			"viral", "trending", "share", "repost", "challenge", "hashtag",
			"breaking", "exclusive", "must watch", "omg",
		},
		EmotionalTriggers: []string{
			"love", "hate", "shocking", "amazing", "unbelievable",
			"heartbreaking", "proud", "angry", "emotional", "wow",
		},
		PrideKeywords: []string{
			"bharat", "desi", "hindustan", "jai hind", "made in india",
			"atmanirbhar", "swadeshi", "incredible india",
		},
		MemeKeywords: []string{
			"meme", "lol", "lmao", "rofl", "troll", "savage", "epic",
			"relatable", "moment",
		},
		InfluencerKeywords: []string{
			"influencer", "collab", "unboxing", "review", "vlog",
			"subscribe", "follow", "giveaway", "sponsored", "link in bio",
		},
		PlatformKeywords: []string{
			"reels", "shorts", "story", "status", "whatsapp", "instagram",
			"youtube", "forward",
		},

		Generations: []GenerationProfile{
			{
				Name: "Gen-Z",
				Keywords: []string{
					"bestie", "no cap", "slay", "vibe", "pov", "lowkey",
					"aesthetic", "delulu", "core", "fr fr",
				},
				CommunicationStyle: "short-form, irony-heavy, emoji-dense",
				ValueSystem:        "authenticity and self-expression",
				DigitalSavviness:   95,
				ConsumptionPattern: "impulse digital-first, creator-led discovery",
			},
			{
				Name: "Millennial",
				Keywords: []string{
					"adulting", "fomo", "squad", "hustle", "brunch",
					"throwback", "binge", "road trip", "startup life",
				},
				CommunicationStyle: "relatable storytelling, hashtag-fluent",
				ValueSystem:        "experiences over ownership",
				DigitalSavviness:   85,
				ConsumptionPattern: "research-driven online, D2C brand loyalty",
			},
			{
				Name: "Gen-X",
				Keywords: []string{
					"emi", "warranty", "mutual fund", "petrol", "salary",
					"facebook", "cricket match", "newspaper",
				},
				CommunicationStyle: "direct, value-focused, forwards over posts",
				ValueSystem:        "stability and family security",
				DigitalSavviness:   60,
				ConsumptionPattern: "deliberate offline-online mix, deal-seeking",
			},
			{
				Name: "Boomer",
				Keywords: []string{
					"good morning", "blessings", "beta", "pension",
					"fixed deposit", "doordarshan", "gold", "grandchildren",
				},
				CommunicationStyle: "formal, greeting-forward, voice over text",
				ValueSystem:        "tradition and community standing",
				DigitalSavviness:   30,
				ConsumptionPattern: "trusted-shop offline, gold and savings",
			},
		},

		PurchaseKeywords: []string{
			"buy", "kharidna", "order", "purchase", "book now",
			"add to cart", "checkout", "cod", "delivery kab",
		},
		PriceKeywords: []string{
			"discount", "sasta", "mehenga", "offer", "sale", "coupon",
			"deal", "cashback", "price drop", "kitne ka",
		},
		LoyaltyKeywords: []string{
			"always buy", "favourite brand", "trusted", "bharosa",
			"since years", "loyal", "never switch", "recommend",
		},
		LuxuryKeywords: []string{
			"luxury", "premium", "business class", "designer", "imported",
			"five star", "penthouse", "pro max",
		},
		BudgetKeywords: []string{
			"budget", "sasta", "jugaad", "second hand", "refurbished",
			"kifayati", "free delivery", "under 500",
		},
		AnxietyKeywords: []string{
			"inflation", "mehengai", "job loss", "layoff", "recession",
			"salary cut", "loan", "debt", "kharcha",
		},

		LeftKeywords: []string{
			"secular", "socialist", "welfare", "subsidies", "workers",
			"unions", "minority rights", "equality", "azadi",
		},
		RightKeywords: []string{
			"nationalist", "hindutva", "ram mandir", "uniform civil code",
			"surgical strike", "strong leader", "sanatan", "deshbhakt",
		},
		NationalPrideKeywords: []string{
			"jai hind", "vande mataram", "tiranga", "isro", "chandrayaan",
			"indian army", "proud of india", "olympics",
		},
		CauseKeywords: []string{
			"environment", "education", "women safety", "child labour",
			"swachh bharat", "mental health", "road safety",
			"water conservation", "animal welfare",
		},
		ActivismKeywords: []string{
			"protest", "dharna", "boycott", "petition", "strike",
			"andolan", "raise your voice", "justice for",
		},

		CulturalPositive: []WeightedTerm{
			{Term: "shubh", Weight: 8},
			{Term: "mubarak", Weight: 8},
			{Term: "badhai", Weight: 8},
			{Term: "khushi", Weight: 7},
			{Term: "utsav", Weight: 6},
			{Term: "mangal", Weight: 6},
			{Term: "dhanyavad", Weight: 6},
			{Term: "blessed", Weight: 6},
			{Term: "festive", Weight: 6},
			{Term: "swagat", Weight: 5},
			{Term: "shanti", Weight: 5},
			{Term: "jai", Weight: 5},
		},
		CulturalNegative: []WeightedTerm{
			{Term: "shok", Weight: 8},
			{Term: "ashubh", Weight: 8},
			{Term: "nafrat", Weight: 8},
			{Term: "apman", Weight: 7},
			{Term: "dukh", Weight: 7},
			{Term: "paap", Weight: 6},
			{Term: "sharam", Weight: 6},
			{Term: "nazar lag", Weight: 5},
		},
		GenericPositive: []string{
			"good", "great", "happy", "love", "best", "awesome", "nice",
			"wonderful", "amazing", "beautiful", "accha", "badhiya",
			"mast", "zabardast",
		},
		GenericNegative: []string{
			"bad", "sad", "hate", "worst", "terrible", "angry", "awful",
			"disappointing", "bekar", "ganda", "bakwas", "ghatiya",
		},
	}
}
