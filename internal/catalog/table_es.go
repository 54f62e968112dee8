package catalog

// spanishTable holds the authored Spanish seed phrases and templates.
var spanishTable = Table{
	Language: Spanish,
	TitleTemplates: [TemplateCount]string{
		"%s - Últimos 5 años",
		"%s - Tendencias 2025/2026",
		"%s - Oportunidades y riesgos",
		"%s - Impacto en la vida diaria",
		"%s - Futuro cercano",
	},
	SummaryTemplates: [TemplateCount]string{
		"¿Cómo cambió %s en los últimos cinco años y por qué?",
		"¿Qué tendencias marcarán %s en 2025/2026?",
		"¿Cuáles son las oportunidades y riesgos en %s?",
		"¿Cómo impacta %s en la vida diaria y los hábitos?",
		"¿Hacia dónde podría evolucionar %s en los próximos tres años?",
	},
	Categories: []CategorySeed{
		{Name: "Teknoloji", Phrases: []string{
			"Agentes de IA",
			"Ética de la IA",
			"Modelos de lenguaje grandes",
			"IA en el dispositivo",
			"IA en ciberseguridad",
			"Computación cuántica",
			"Redes 5G y 6G",
			"IoT y hogares inteligentes",
			"Arquitectura nativa en la nube",
			"Zero Trust",
			"Privacidad de datos",
			"Identidad digital",
			"Casos de uso de blockchain",
			"Experiencias AR y VR",
			"Automatización y RPA",
			"Software eficiente en energía",
			"Centros de datos verdes",
			"Seguridad de código abierto",
			"Innovación fintech",
			"Robótica y cobots",
		}},
		{Name: "Sosyal", Phrases: []string{
			"Algoritmos de redes sociales",
			"Desintoxicación digital",
			"Comunidades en línea",
			"Soledad y pertenencia",
			"Comunicación Gen Z",
			"Comunicación familiar",
			"Seguridad en redes sociales",
			"Combatir la desinformación",
			"Privacidad y compartir",
			"Etiqueta digital",
			"Voluntariado en línea",
			"Vida urbana",
			"Equilibrio vida-trabajo",
			"Migración e integración",
			"Igualdad de género",
			"Ciudadanía digital",
			"Solidaridad en crisis",
			"Economía de influencers",
			"Aprendizaje comunitario",
			"Protección de culturas locales",
		}},
		{Name: "Bilim", Phrases: []string{
			"Modelado climático",
			"Exploración espacial",
			"Misiones a Marte",
			"Edición genética",
			"Biotecnología",
			"Neurociencia",
			"Física cuántica",
			"Materia oscura",
			"Energías renovables",
			"Química de baterías",
			"Investigación oceánica",
			"Preparación ante pandemias",
			"Tecnologías de vacunas",
			"Órganos artificiales",
			"Ciencia de materiales",
			"Nanotecnología",
			"Astrobiología",
			"Comunicación científica",
			"Ciencia de datos abierta",
			"Ética científica",
		}},
		{Name: "Sanat", Phrases: []string{
			"Arte digital",
			"Arte con IA",
			"Arte urbano",
			"Pintura moderna",
			"Escultura contemporánea",
			"Tendencias en fotografía",
			"Tipografía y diseño gráfico",
			"Ilustración",
			"Arte performático",
			"Experiencias digitales en museos",
			"Terapia artística",
			"Cultura local y arte",
			"Minimalismo",
			"Teoría del color",
			"Arte sostenible",
			"Arte público",
			"Coleccionismo de arte",
			"Pensamiento de diseño",
			"Artesanía tradicional",
			"Educación artística",
		}},
		{Name: "Spor", Phrases: []string{
			"Tácticas de fútbol",
			"Analítica en baloncesto",
			"Ecosistema de esports",
			"Ciencia del entrenamiento",
			"Nutrición deportiva",
			"Prevención de lesiones",
			"Psicología deportiva",
			"Tecnologías de rendimiento",
			"Cultura deportiva amateur",
			"Deportes femeninos",
			"Sostenibilidad en el deporte",
			"Carrera y maratón",
			"Técnicas de natación",
			"Tendencias de fitness",
			"Atletas jóvenes",
			"VAR y tecnología arbitral",
			"Marketing deportivo",
			"Dinámica de equipo",
			"Recuperación y sueño",
			"Deportes al aire libre",
		}},
		{Name: "Müzik", Phrases: []string{
			"Economía del streaming",
			"Video corto y descubrimiento musical",
			"Producción musical con IA",
			"Experiencia en vivo",
			"Artistas independientes",
			"Derechos de autor",
			"Tendencias lo-fi y ambient",
			"Evolución del hip-hop",
			"Escena de música electrónica",
			"Música del mundo",
			"Experiencia de conciertos",
			"Estudio casero",
			"Mezcla y mastering",
			"Música para cine y series",
			"Colaboraciones de marca",
			"Estrategia de playlists",
			"Música y videojuegos",
			"Musicoterapia",
			"Técnicas vocales",
			"Aprender instrumentos",
		}},
		{Name: "Film", Phrases: []string{
			"Estrategias de plataformas",
			"Cine vs digital",
			"Narrativa de cortometraje",
			"Tendencias de documental",
			"IA y VFX",
			"Guion",
			"Profundidad de personajes",
			"Cinematografía",
			"Narrativa de series",
			"Franquicias y secuelas",
			"Cine independiente",
			"Cultura de festivales",
			"Cine turco",
			"Técnicas de animación",
			"Presupuestos de producción",
			"Hábitos de audiencia",
			"Marketing cinematográfico",
			"Diversidad y representación",
			"Adaptaciones de historias reales",
			"Crítica cinematográfica",
		}},
		{Name: "Kitap", Phrases: []string{
			"E-books vs papel",
			"Tendencias de audiolibros",
			"Lectura en formato corto",
			"Literatura fantástica",
			"Ciencia ficción",
			"Policíaco y thriller",
			"Desarrollo personal",
			"No ficción actual",
			"Literatura traducida",
			"Juvenil",
			"Hábitos de lectura",
			"Presencia digital de autores",
			"Clubes de lectura",
			"Censura y libertad",
			"IA en la literatura",
			"Releer clásicos",
			"Literatura infantil",
			"Novela gráfica",
			"Publicación sostenible",
			"Diseño de portadas",
		}},
		{Name: "Yemek", Phrases: []string{
			"Alimentación saludable",
			"Cocina plant-based",
			"Fermentación",
			"Cocinas locales",
			"Cocina sin desperdicio",
			"Recetas rápidas",
			"Cultura del café",
			"Cultura del té",
			"Comida callejera",
			"Pan casero",
			"Especias y aromas",
			"Alimentación estacional",
			"Nutrición equilibrada",
			"Seguridad alimentaria",
			"Fotografía gastronómica",
			"Alta cocina",
			"Postres veganos",
			"Nutrición infantil",
			"Snacks gourmet",
			"Planificación de comidas",
		}},
		{Name: "Seyahat", Phrases: []string{
			"Turismo sostenible",
			"Nomadismo digital",
			"Viajes con bajo presupuesto",
			"Viaje lento",
			"Experiencias culturales",
			"Rutas de naturaleza",
			"Escapadas urbanas",
			"Tours gastronómicos",
			"Viaje seguro",
			"Visas y planificación",
			"Viajes en familia",
			"Viajes en solitario",
			"Conexión con locales",
			"Viajes en tren",
			"Camper y camping",
			"Rutas de invierno",
			"Vacaciones de playa",
			"Rutas fotográficas",
			"Tecnología para viajar",
			"Preparación ante emergencias",
		}},
		{Name: "Moda", Phrases: []string{
			"Moda sostenible",
			"Segunda mano y reutilización",
			"Armario cápsula",
			"Estilo urbano",
			"Estilo minimalista",
			"Tendencias de color",
			"Accesorios y estilo",
			"Athleisure",
			"Tejidos tecnológicos",
			"Diseñadores locales",
			"Moda y cultura",
			"Semanas de la moda",
			"Consejos de estilo",
			"Diversidad de tallas",
			"Producción ética",
			"Revival vintage",
			"Moda unisex",
			"Impacto de la fast fashion",
			"Upcycling",
			"Ropa de trabajo",
		}},
		{Name: "Sağlık", Phrases: []string{
			"Salud mental",
			"Higiene del sueño",
			"Nutrición y salud",
			"Ejercicio regular",
			"Apoyo inmunológico",
			"Telemedicina",
			"Apps de salud digital",
			"Gestión del estrés",
			"Mindfulness",
			"Manejo de enfermedades crónicas",
			"Alfabetización en salud",
			"Salud de la mujer",
			"Salud del hombre",
			"Salud infantil",
			"Salud senior",
			"Envejecimiento saludable",
			"Wearables",
			"Privacidad de datos de salud",
			"Primeros auxilios",
			"Salud preventiva",
		}},
		{Name: "Eğitim", Phrases: []string{
			"Aprendizaje híbrido",
			"Aprendizaje asistido por IA",
			"Microaprendizaje",
			"Aprendizaje continuo",
			"Gamificación en educación",
			"Evaluación remota",
			"Herramientas para docentes",
			"Aprender idiomas",
			"Educación STEM",
			"Alfabetización en programación",
			"Pensamiento crítico",
			"Alfabetización mediática",
			"Aprendizaje basado en proyectos",
			"Orientación profesional",
			"Formación profesional",
			"Educación especial",
			"Educación accesible",
			"Equidad educativa",
			"Ansiedad ante exámenes",
			"Hábitos de estudio",
		}},
		{Name: "Çevre", Phrases: []string{
			"Soluciones climáticas",
			"Energía renovable",
			"Huella de carbono",
			"Economía circular",
			"Gestión de residuos",
			"Reducir plásticos",
			"Ahorro de agua",
			"Biodiversidad",
			"Ciudades verdes",
			"Transporte público",
			"Protección de bosques",
			"Agricultura sostenible",
			"Contaminación marina",
			"Calidad del aire",
			"Justicia climática",
			"Tecnología verde",
			"Eficiencia energética",
			"Vida sin residuos",
			"Ecoturismo",
			"Restauración de la naturaleza",
		}},
		{Name: "İş Hayatı", Phrases: []string{
			"Trabajo remoto",
			"Cultura híbrida",
			"Medición del rendimiento",
			"Habilidades de liderazgo",
			"Comunicación de equipo",
			"Experiencia del empleado",
			"Equilibrio vida-trabajo",
			"Planificación de carrera",
			"Upskilling y reskilling",
			"Analítica de RR. HH.",
			"Trabajo ágil",
			"Gestión de proyectos",
			"Ecosistema startup",
			"Alfabetización financiera",
			"Emprendimiento",
			"Estrategias de ventas",
			"Tendencias de marketing",
			"Experiencia del cliente",
			"Ética empresarial",
			"Seguridad laboral",
		}},
	},
}
