package curriculum

// VowelOrder is the fixed in-session progression order for the vowel drill.
// The mastery tracker walks this order; it never reorders or skips.
var VowelOrder = []string{"vocal-a", "vocal-e", "vocal-i", "vocal-o", "vocal-u"}

// seedSkills defines the MVP literacy curriculum.
// 24 skills across 6 domains, levels 1-4, ages 3-10.
var seedSkills = []Skill{
	// Vocales (5)
	{
		ID:          "vocal-a",
		Name:        "La vocal A",
		Description: "Reconocer la letra A y su sonido",
		Domain:      DomainVocales,
		Level:       1,
		AgeMin:      3, AgeMax: 6,
		Keywords: []string{"letras", "sonidos", "animales"},
	},
	{
		ID:          "vocal-e",
		Name:        "La vocal E",
		Description: "Reconocer la letra E y su sonido",
		Domain:      DomainVocales,
		Level:       1,
		AgeMin:      3, AgeMax: 6,
		Keywords:      []string{"letras", "sonidos"},
		Prerequisites: []string{"vocal-a"},
	},
	{
		ID:          "vocal-i",
		Name:        "La vocal I",
		Description: "Reconocer la letra I y su sonido",
		Domain:      DomainVocales,
		Level:       1,
		AgeMin:      3, AgeMax: 6,
		Keywords:      []string{"letras", "sonidos"},
		Prerequisites: []string{"vocal-e"},
	},
	{
		ID:          "vocal-o",
		Name:        "La vocal O",
		Description: "Reconocer la letra O y su sonido",
		Domain:      DomainVocales,
		Level:       1,
		AgeMin:      3, AgeMax: 6,
		Keywords:      []string{"letras", "sonidos"},
		Prerequisites: []string{"vocal-i"},
	},
	{
		ID:          "vocal-u",
		Name:        "La vocal U",
		Description: "Reconocer la letra U y su sonido",
		Domain:      DomainVocales,
		Level:       1,
		AgeMin:      3, AgeMax: 6,
		Keywords:      []string{"letras", "sonidos"},
		Prerequisites: []string{"vocal-o"},
	},

	// Sílabas (7)
	{
		ID:          "silabas-m",
		Name:        "Sílabas con M",
		Description: "Leer ma, me, mi, mo, mu",
		Domain:      DomainSilabas,
		Level:       1,
		AgeMin:      4, AgeMax: 7,
		Keywords:      []string{"sonidos", "letras"},
		Prerequisites: []string{"vocal-u"},
	},
	{
		ID:          "silabas-p",
		Name:        "Sílabas con P",
		Description: "Leer pa, pe, pi, po, pu",
		Domain:      DomainSilabas,
		Level:       1,
		AgeMin:      4, AgeMax: 7,
		Keywords:      []string{"sonidos", "letras"},
		Prerequisites: []string{"silabas-m"},
	},
	{
		ID:          "silabas-l",
		Name:        "Sílabas con L",
		Description: "Leer la, le, li, lo, lu",
		Domain:      DomainSilabas,
		Level:       1,
		AgeMin:      4, AgeMax: 7,
		Keywords:      []string{"sonidos", "letras"},
		Prerequisites: []string{"silabas-m"},
	},
	{
		ID:          "silabas-s",
		Name:        "Sílabas con S",
		Description: "Leer sa, se, si, so, su",
		Domain:      DomainSilabas,
		Level:       2,
		AgeMin:      4, AgeMax: 7,
		Keywords:      []string{"sonidos", "serpientes"},
		Prerequisites: []string{"silabas-p"},
	},
	{
		ID:          "silabas-t",
		Name:        "Sílabas con T",
		Description: "Leer ta, te, ti, to, tu",
		Domain:      DomainSilabas,
		Level:       2,
		AgeMin:      4, AgeMax: 7,
		Keywords:      []string{"sonidos"},
		Prerequisites: []string{"silabas-l"},
	},
	{
		ID:          "silabas-n",
		Name:        "Sílabas con N",
		Description: "Leer na, ne, ni, no, nu",
		Domain:      DomainSilabas,
		Level:       2,
		AgeMin:      4, AgeMax: 7,
		Keywords:      []string{"sonidos"},
		Prerequisites: []string{"silabas-s"},
	},
	{
		ID:          "silabas-trabadas",
		Name:        "Sílabas trabadas",
		Description: "Leer bra, pla, tre y otras sílabas trabadas",
		Domain:      DomainSilabas,
		Level:       2,
		AgeMin:      5, AgeMax: 8,
		Keywords:      []string{"sonidos", "retos"},
		Prerequisites: []string{"silabas-t", "silabas-n"},
	},

	// Palabras (4)
	{
		ID:          "palabras-bisilabas",
		Name:        "Palabras de dos sílabas",
		Description: "Leer palabras como mesa, pato, luna",
		Domain:      DomainPalabras,
		Level:       2,
		AgeMin:      5, AgeMax: 8,
		Keywords:      []string{"animales", "casa", "naturaleza"},
		Prerequisites: []string{"silabas-p"},
	},
	{
		ID:          "palabras-frecuentes",
		Name:        "Palabras frecuentes",
		Description: "Reconocer de un vistazo las palabras más comunes",
		Domain:      DomainPalabras,
		Level:       2,
		AgeMin:      5, AgeMax: 8,
		Keywords:      []string{"casa", "familia"},
		Prerequisites: []string{"palabras-bisilabas"},
	},
	{
		ID:          "palabras-trisilabas",
		Name:        "Palabras de tres sílabas",
		Description: "Leer palabras como pelota, camisa, zapato",
		Domain:      DomainPalabras,
		Level:       2,
		AgeMin:      5, AgeMax: 8,
		Keywords:      []string{"juguetes", "deportes"},
		Prerequisites: []string{"palabras-bisilabas"},
	},
	{
		ID:          "palabras-trabadas",
		Name:        "Palabras con sílabas trabadas",
		Description: "Leer palabras como libro, tigre, planta",
		Domain:      DomainPalabras,
		Level:       3,
		AgeMin:      6, AgeMax: 9,
		Keywords:      []string{"animales", "naturaleza", "retos"},
		Prerequisites: []string{"palabras-trisilabas", "silabas-trabadas"},
	},

	// Frases (3)
	{
		ID:          "frases-simples",
		Name:        "Frases simples",
		Description: "Leer frases cortas de tres a cinco palabras",
		Domain:      DomainFrases,
		Level:       2,
		AgeMin:      5, AgeMax: 9,
		Keywords:      []string{"casa", "familia", "animales"},
		Prerequisites: []string{"palabras-frecuentes"},
	},
	{
		ID:          "frases-preguntas",
		Name:        "Frases con preguntas",
		Description: "Leer y entonar preguntas y exclamaciones",
		Domain:      DomainFrases,
		Level:       3,
		AgeMin:      6, AgeMax: 9,
		Keywords:      []string{"preguntas", "juegos"},
		Prerequisites: []string{"frases-simples"},
	},
	{
		ID:          "frases-largas",
		Name:        "Frases largas",
		Description: "Leer frases de más de ocho palabras con conectores",
		Domain:      DomainFrases,
		Level:       3,
		AgeMin:      6, AgeMax: 10,
		Keywords:      []string{"aventuras", "retos"},
		Prerequisites: []string{"frases-preguntas"},
	},

	// Cuentos (3)
	{
		ID:          "cuentos-cortos",
		Name:        "Cuentos cortos",
		Description: "Leer cuentos de una página",
		Domain:      DomainCuentos,
		Level:       3,
		AgeMin:      6, AgeMax: 10,
		Keywords:      []string{"cuentos", "aventuras", "animales"},
		Prerequisites: []string{"frases-simples"},
	},
	{
		ID:          "cuentos-medianos",
		Name:        "Cuentos medianos",
		Description: "Leer cuentos de varias páginas",
		Domain:      DomainCuentos,
		Level:       3,
		AgeMin:      7, AgeMax: 10,
		Keywords:      []string{"cuentos", "aventuras", "magia"},
		Prerequisites: []string{"cuentos-cortos"},
	},
	{
		ID:          "cuentos-capitulos",
		Name:        "Cuentos por capítulos",
		Description: "Leer un cuento largo dividido en capítulos",
		Domain:      DomainCuentos,
		Level:       4,
		AgeMin:      7, AgeMax: 10,
		Keywords:      []string{"cuentos", "aventuras", "misterio"},
		Prerequisites: []string{"cuentos-medianos"},
	},

	// Comprensión (2 + 1)
	{
		ID:          "comprension-literal",
		Name:        "Comprensión literal",
		Description: "Responder qué pasó, quién y dónde",
		Domain:      DomainComprension,
		Level:       3,
		AgeMin:      6, AgeMax: 10,
		Keywords:      []string{"preguntas", "cuentos"},
		Prerequisites: []string{"cuentos-cortos"},
	},
	{
		ID:          "comprension-inferencia",
		Name:        "Inferencias",
		Description: "Deducir lo que el cuento no dice directamente",
		Domain:      DomainComprension,
		Level:       4,
		AgeMin:      7, AgeMax: 10,
		Keywords:      []string{"preguntas", "misterio", "retos"},
		Prerequisites: []string{"comprension-literal"},
	},
	{
		ID:          "comprension-resumen",
		Name:        "Resumir un cuento",
		Description: "Contar con sus palabras lo más importante",
		Domain:      DomainComprension,
		Level:       4,
		AgeMin:      8, AgeMax: 10,
		Keywords:      []string{"cuentos", "retos"},
		Prerequisites: []string{"comprension-inferencia"},
	},
}

func init() {
	g = buildGraph(seedSkills)
}
