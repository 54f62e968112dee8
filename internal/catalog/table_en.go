package catalog

// englishTable holds the authored English seed phrases and templates.
var englishTable = Table{
	Language: English,
	TitleTemplates: [TemplateCount]string{
		"%s - The Last 5 Years",
		"%s - 2025/2026 Trends",
		"%s - Opportunities and Risks",
		"%s - Impact on Daily Life",
		"%s - Near Future",
	},
	SummaryTemplates: [TemplateCount]string{
		"How has %s changed over the last five years, and why?",
		"What trends will shape %s in 2025/2026?",
		"What are the opportunities and risks in %s?",
		"How does %s affect daily life and habits?",
		"Where could %s evolve in the next three years?",
	},
	Categories: []CategorySeed{
		{Name: "Teknoloji", Phrases: []string{
			"AI Agents",
			"AI Ethics",
			"Large Language Models",
			"On-Device AI",
			"AI in Cybersecurity",
			"Quantum Computing",
			"5G and 6G Networks",
			"IoT and Smart Homes",
			"Cloud-Native Architecture",
			"Zero Trust",
			"Data Privacy",
			"Digital Identity",
			"Blockchain Use Cases",
			"AR and VR Experiences",
			"Automation and RPA",
			"Energy-Efficient Software",
			"Green Data Centers",
			"Open-Source Security",
			"Fintech Innovation",
			"Robotics and Cobots",
		}},
		{Name: "Sosyal", Phrases: []string{
			"Social Media Algorithms",
			"Digital Detox",
			"Online Communities",
			"Loneliness and Belonging",
			"Gen Z Communication",
			"Family Communication",
			"Social Media Safety",
			"Fighting Misinformation",
			"Privacy and Sharing",
			"Digital Etiquette",
			"Online Volunteering",
			"Urban Life",
			"Work-Life Balance",
			"Migration and Integration",
			"Gender Equality",
			"Digital Citizenship",
			"Solidarity in Crisis",
			"Influencer Economy",
			"Community-Based Learning",
			"Protecting Local Cultures",
		}},
		{Name: "Bilim", Phrases: []string{
			"Climate Modeling",
			"Space Exploration",
			"Mars Missions",
			"Gene Editing",
			"Biotechnology",
			"Neuroscience",
			"Quantum Physics",
			"Dark Matter",
			"Renewable Energy Tech",
			"Battery Chemistry",
			"Ocean Research",
			"Pandemic Preparedness",
			"Vaccine Technologies",
			"Artificial Organs",
			"Materials Science",
			"Nanotechnology",
			"Astrobiology",
			"Science Communication",
			"Open Data Science",
			"Scientific Ethics",
		}},
		{Name: "Sanat", Phrases: []string{
			"Digital Art",
			"AI in Art",
			"Street Art",
			"Modern Painting",
			"Contemporary Sculpture",
			"Photography Trends",
			"Typography and Graphic Design",
			"Illustration",
			"Performance Art",
			"Digital Museum Experiences",
			"Art Therapy",
			"Local Culture and Art",
			"Minimalism",
			"Color Theory",
			"Sustainable Art",
			"Public Art",
			"Art Collecting",
			"Design Thinking",
			"Traditional Crafts",
			"Art Education",
		}},
		{Name: "Spor", Phrases: []string{
			"Football Tactics",
			"Basketball Analytics",
			"Esports Ecosystem",
			"Training Science",
			"Sports Nutrition",
			"Injury Prevention",
			"Sports Psychology",
			"Performance Technologies",
			"Amateur Sports Culture",
			"Women in Sports",
			"Sustainability in Sports",
			"Running and Marathons",
			"Swimming Techniques",
			"Fitness Trends",
			"Youth Athletes",
			"VAR and Referee Tech",
			"Sports Marketing",
			"Team Dynamics",
			"Recovery and Sleep",
			"Outdoor Sports",
		}},
		{Name: "Müzik", Phrases: []string{
			"Streaming Economy",
			"Short Video and Music Discovery",
			"AI Music Production",
			"Live Performance Experience",
			"Independent Artists",
			"Copyright and Rights",
			"Lo-fi and Ambient Trends",
			"Hip-Hop Evolution",
			"Electronic Music Scene",
			"World Music",
			"Concert Experience",
			"Home Studio Setup",
			"Mixing and Mastering",
			"Film and Series Scores",
			"Brand Collaborations",
			"Playlist Strategy",
			"Music and Gaming",
			"Music Therapy",
			"Vocal Techniques",
			"Learning Instruments",
		}},
		{Name: "Film", Phrases: []string{
			"Streaming Platform Strategies",
			"Cinema vs Digital",
			"Short Film Storytelling",
			"Documentary Trends",
			"AI and VFX",
			"Screenwriting",
			"Character Depth",
			"Cinematography",
			"Series Storytelling",
			"Franchises and Sequels",
			"Independent Cinema",
			"Festival Culture",
			"Turkish Cinema",
			"Animation Techniques",
			"Production Budgets",
			"Audience Habits",
			"Film Marketing",
			"Diversity and Representation",
			"True Story Adaptations",
			"Film Criticism",
		}},
		{Name: "Kitap", Phrases: []string{
			"E-books vs Print",
			"Audiobook Trends",
			"Short-Form Reading",
			"Fantasy Literature",
			"Science Fiction",
			"Crime and Thriller",
			"Personal Development",
			"Current Nonfiction",
			"Translated Literature",
			"Young Adult",
			"Reading Habits",
			"Authors’ Digital Presence",
			"Book Clubs",
			"Censorship and Freedom",
			"AI in Literature",
			"Revisiting Classics",
			"Children’s Literature",
			"Graphic Novels",
			"Sustainable Publishing",
			"Cover Design",
		}},
		{Name: "Yemek", Phrases: []string{
			"Healthy Eating",
			"Plant-Based Cuisine",
			"Fermentation",
			"Local Cuisines",
			"Zero-Waste Kitchen",
			"Quick and Easy Recipes",
			"Coffee Culture",
			"Tea Culture",
			"Street Food",
			"Homemade Bread",
			"Spices and Aroma",
			"Seasonal Eating",
			"Balanced Nutrition",
			"Food Safety",
			"Food Photography",
			"Fine Dining",
			"Vegan Desserts",
			"Child Nutrition",
			"Gourmet Snacks",
			"Meal Planning",
		}},
		{Name: "Seyahat", Phrases: []string{
			"Sustainable Tourism",
			"Digital Nomadism",
			"Budget Travel",
			"Slow Travel",
			"Cultural Experiences",
			"Nature Routes",
			"City Getaways",
			"Gastronomy Tours",
			"Safe Travel",
			"Visa and Planning",
			"Family Travel",
			"Solo Travel",
			"Local Connections",
			"Train Journeys",
			"Vanlife and Camping",
			"Winter and Ski Routes",
			"Beach Vacations",
			"Photography Routes",
			"Travel Tech",
			"Emergency Preparedness",
		}},
		{Name: "Moda", Phrases: []string{
			"Sustainable Fashion",
			"Second-Hand and Reuse",
			"Capsule Wardrobe",
			"Street Style",
			"Minimalist Style",
			"Color Trends",
			"Accessory Styling",
			"Athleisure",
			"Tech Fabrics",
			"Local Designers",
			"Fashion and Culture",
			"Fashion Weeks",
			"Styling Tips",
			"Size Inclusivity",
			"Ethical Production",
			"Vintage Revival",
			"Unisex Fashion",
			"Impact of Fast Fashion",
			"Upcycling",
			"Workwear",
		}},
		{Name: "Sağlık", Phrases: []string{
			"Mental Health",
			"Sleep Hygiene",
			"Nutrition and Health",
			"Regular Exercise",
			"Immune Support",
			"Telehealth",
			"Digital Health Apps",
			"Stress Management",
			"Mindfulness",
			"Chronic Disease Management",
			"Health Literacy",
			"Women’s Health",
			"Men’s Health",
			"Child Health",
			"Senior Health",
			"Healthy Aging",
			"Wearables",
			"Health Data Privacy",
			"First Aid Awareness",
			"Preventive Health",
		}},
		{Name: "Eğitim", Phrases: []string{
			"Hybrid Learning",
			"AI-Assisted Learning",
			"Microlearning",
			"Lifelong Learning",
			"Gamification in Education",
			"Remote Assessment",
			"Teacher Support Tools",
			"Language Learning",
			"STEM Education",
			"Coding Literacy",
			"Critical Thinking",
			"Media Literacy",
			"Project-Based Learning",
			"Career Guidance",
			"Vocational Training",
			"Special Education",
			"Accessible Education",
			"Equity in Education",
			"Exam Anxiety",
			"Study Habits",
		}},
		{Name: "Çevre", Phrases: []string{
			"Climate Solutions",
			"Renewable Energy",
			"Carbon Footprint",
			"Circular Economy",
			"Waste Management",
			"Reducing Plastic",
			"Water Conservation",
			"Biodiversity",
			"Green Cities",
			"Public Transport",
			"Forest Protection",
			"Sustainable Agriculture",
			"Ocean Pollution",
			"Air Quality",
			"Climate Justice",
			"Green Technology",
			"Energy Efficiency",
			"Zero-Waste Living",
			"Ecotourism",
			"Nature Restoration",
		}},
		{Name: "İş Hayatı", Phrases: []string{
			"Remote Work",
			"Hybrid Culture",
			"Performance Measurement",
			"Leadership Skills",
			"Team Communication",
			"Employee Experience",
			"Work-Life Balance",
			"Career Planning",
			"Upskilling and Reskilling",
			"HR Analytics",
			"Agile Ways of Working",
			"Project Management",
			"Startup Ecosystem",
			"Financial Literacy",
			"Entrepreneurship",
			"Sales Strategies",
			"Marketing Trends",
			"Customer Experience",
			"Business Ethics",
			"Workplace Safety",
		}},
	},
}
