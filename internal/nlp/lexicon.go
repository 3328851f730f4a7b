package nlp

import (
	"github.com/spigell/cv-analyzer/internal/document"
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func tagged(pos document.POS, words ...string) map[string]document.POS {
	m := make(map[string]document.POS, len(words))
	for _, w := range words {
		m[w] = pos
	}
	return m
}

func merge(maps ...map[string]document.POS) map[string]document.POS {
	out := make(map[string]document.POS)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var closedClass = merge(
	tagged(document.Determiner,
		"el", "la", "los", "las", "un", "una", "unos", "unas",
		"este", "esta", "estos", "estas", "ese", "esa", "esos", "esas",
		"aquel", "aquella", "aquellos", "aquellas",
		"mi", "mis", "tu", "tus", "su", "sus",
		"nuestro", "nuestra", "nuestros", "nuestras", "vuestro", "vuestra", "vuestros", "vuestras",
		"cada", "todo", "toda", "todos", "todas", "otro", "otra", "otros", "otras",
		"algún", "alguna", "algunos", "algunas", "ningún", "ninguna", "ningunos", "ningunas",
		"cualquier", "cualquiera", "mucho", "mucha", "muchos", "muchas", "poco", "poca", "pocos", "pocas",
		"varios", "varias", "tanto", "tanta", "tantos", "tantas", "demás", "ambos", "ambas",
		"cuyo", "cuya", "cuyos", "cuyas", "mismo", "misma", "mismos", "mismas", "dicho", "dicha", "dichos", "dichas",
	),
	tagged(document.Adposition,
		"a", "ante", "bajo", "con", "contra", "de", "desde", "durante", "en", "entre", "hacia",
		"hasta", "mediante", "para", "por", "según", "sin", "so", "sobre", "tras", "del", "al", "vía",
	),
	tagged(document.Pronoun,
		"yo", "tú", "él", "ella", "ello", "nosotros", "nosotras", "vosotros", "vosotras", "ellos", "ellas",
		"usted", "ustedes", "me", "te", "se", "nos", "os", "le", "les", "lo", "mí", "ti",
		"conmigo", "contigo", "consigo", "quien", "quienes", "cual", "cuales", "qué", "quién", "quiénes",
		"cuál", "cuáles", "cuánto", "cuánta", "cuántos", "cuántas", "esto", "eso", "aquello",
		"algo", "nada", "alguien", "nadie", "éste", "ésta", "ése", "ésa",
	),
	tagged(document.CConj, "y", "e", "o", "u", "ni", "pero", "sino"),
	tagged(document.SConj, "que", "porque", "si", "cuando", "aunque", "mientras", "donde", "pues", "como", "cuanto"),
)

// auxForms maps forms of ser, estar and haber to their infinitive.
var auxForms = func() map[string]string {
	m := make(map[string]string)
	add := func(inf string, forms ...string) {
		m[inf] = inf
		for _, f := range forms {
			m[f] = inf
		}
	}
	add("ser", "soy", "eres", "es", "somos", "sois", "son", "era", "eras", "éramos", "erais", "eran",
		"fui", "fuiste", "fue", "fuimos", "fueron", "sido", "siendo", "sea", "seas", "seamos", "sean",
		"seré", "será", "seremos", "serán", "sería", "serían")
	add("estar", "estoy", "estás", "está", "estamos", "estáis", "están", "estaba", "estabas",
		"estábamos", "estaban", "estuve", "estuvo", "estuvimos", "estuvieron", "estando",
		"esté", "estés", "estemos", "estén", "estará", "estarán", "estaría")
	add("haber", "he", "has", "ha", "hemos", "habéis", "han", "había", "habías", "habíamos", "habían",
		"hubo", "habido", "habiendo", "haya", "hayas", "hayamos", "hayan", "habrá", "habrán", "habría", "hay")
	return m
}()

// nounLexicon holds nouns that other rules would mistag, such as verb
// homographs (programa, forma) or words with adjective-like endings.
var nounLexicon = set(
	"programa", "programas", "forma", "formas", "carga", "cargas", "consulta", "consultas",
	"compra", "compras", "venta", "ventas", "entrega", "entregas", "ayuda", "ayudas",
	"marca", "marcas", "cuenta", "cuentas", "oferta", "ofertas", "prueba", "pruebas",
	"práctica", "prácticas", "mejora", "mejoras", "estado", "estados", "resultado", "resultados",
	"mercado", "mercados", "empleado", "empleados", "grado", "grados", "contenido", "contenidos",
	"sentido", "partido", "puesto", "puestos", "pedido", "pedidos", "hecho", "hechos",
	"apartado", "cuidado", "pasado", "periodo", "período", "comando", "comandos",
	"objetivo", "objetivos", "archivo", "archivos", "motivo", "motivos", "dispositivo", "dispositivos",
	"incentivo", "incentivos", "ejecutivo", "ejecutivos", "colectivo", "activo", "activos",
	"ansible", "variable", "variables", "cable", "mueble", "tabla", "tablas",
	"licenciado", "licenciada", "graduado", "graduada", "abogado", "abogada", "diputado",
	"certificado", "certificados", "postgrado", "postgrados", "posgrado", "posgrados",
	"egresado", "egresada", "egresados", "egresadas", "doctorado", "doctorados",
	"aprendizaje", "desarrollo", "trabajo", "diseño", "manejo", "uso", "control", "apoyo", "registro",
)

var adjectiveLexicon = set(
	"nuevo", "nueva", "nuevos", "nuevas", "bueno", "buena", "buenos", "buenas", "buen",
	"gran", "grande", "grandes", "mejor", "mejores", "peor", "peores", "mayor", "mayores", "menor", "menores",
	"alto", "alta", "altos", "altas", "bajo", "baja", "bajos", "bajas",
	"amplio", "amplia", "amplios", "amplias", "sólido", "sólida", "sólidos", "sólidas",
	"mínimo", "mínima", "mínimos", "mínimas", "máximo", "máxima",
	"excelente", "excelentes", "remoto", "remota", "remotos", "híbrido", "híbrida",
	"presencial", "presenciales", "junior", "senior", "semisenior",
	"técnico", "técnica", "técnicos", "técnicas", "nacional", "internacional", "internacionales",
	"propio", "propia", "propios", "propias", "principal", "principales", "diverso", "diversa",
	"diversos", "diversas", "diferente", "diferentes", "importante", "importantes", "relevante",
	"relevantes", "similar", "similares", "fuerte", "fuertes", "ágil", "ágiles", "oral", "orales",
	"escrito", "escrita", "fluido", "fluida", "capaz", "capaces", "anterior", "anteriores",
	"actual", "actuales", "social", "sociales", "digital", "digitales", "full-stack", "fullstack",
)

var adverbLexicon = set(
	"no", "sí", "muy", "más", "menos", "también", "tampoco", "ya", "aún", "todavía", "bien", "mal",
	"siempre", "nunca", "jamás", "ahora", "hoy", "ayer", "mañana", "aquí", "allí", "allá", "ahí",
	"así", "solo", "sólo", "además", "casi", "tan", "bastante", "demasiado", "antes", "después",
	"luego", "pronto", "tarde", "temprano", "despacio", "quizás", "quizá", "acaso", "incluso",
	"apenas", "entonces", "adelante", "atrás", "dentro", "fuera", "cerca", "lejos", "encima", "debajo",
)

var adjectiveSuffixes = []string{
	"oso", "osa", "osos", "osas", "ble", "bles", "ivo", "iva", "ivos", "ivas",
}

// lemmaLexicon covers irregular lemmas that the plural rules get wrong.
var lemmaLexicon = map[string]string{
	"la": "el", "las": "el", "los": "el",
	"una": "uno", "unos": "uno", "unas": "uno", "un": "uno",
	"meses": "mes", "intereses": "interés", "países": "país", "exámenes": "examen",
	"imágenes": "imagen", "órdenes": "orden", "jóvenes": "joven", "ingleses": "inglés",
	"franceses": "francés", "portugueses": "portugués", "volúmenes": "volumen",
	"márgenes": "margen", "orígenes": "origen", "certámenes": "certamen",
	"japoneses": "japonés", "alemanes": "alemán", "cafés": "café", "menús": "menú", "sofás": "sofá",
}

// invariantWords are not inflected for number.
var invariantWords = set(
	"kubernetes", "postgres", "pandas", "keras", "atlas", "jenkins", "redis", "express", "aws",
	"lunes", "martes", "miércoles", "jueves", "viernes", "análisis", "crisis", "tesis", "virus",
	"campus", "bonus", "corpus", "status", "ios", "macos", "sass", "less", "devops", "mlops", "sales",
	"énfasis", "síntesis", "hipótesis", "diagnosis", "dosis", "gratis", "tenis", "chasis", "plus",
	"cactus", "consensus", "nexus", "prometheus", "postgis", "paréntesis", "génesis", "sinopsis",
	"oasis", "iris", "ómnibus", "lapsus",
)

// stopWords is a general purpose Spanish stop list.
var stopWords = set(
	"a", "acá", "ahí", "al", "algo", "algún", "alguna", "algunas", "alguno", "algunos", "allá", "allí",
	"ambos", "ante", "antes", "aquel", "aquella", "aquellas", "aquello", "aquellos", "aquí", "así",
	"aún", "aunque", "bajo", "bastante", "bien", "cada", "casi", "cierta", "ciertas", "cierto", "ciertos",
	"como", "cómo", "con", "conmigo", "contigo", "contra", "cual", "cuales", "cualquier", "cuando",
	"cuanto", "cuánto", "de", "debe", "deben", "debido", "del", "demás", "dentro", "desde", "después",
	"donde", "dos", "durante", "e", "el", "él", "ella", "ellas", "ello", "ellos", "en", "encima",
	"entonces", "entre", "era", "eran", "eras", "eres", "es", "esa", "esas", "ese", "eso", "esos",
	"esta", "está", "estaba", "estaban", "estado", "estamos", "están", "estar", "estas", "este",
	"esto", "estos", "estoy", "fin", "fue", "fueron", "fui", "fuimos", "ha", "había", "habían",
	"haber", "hace", "hacemos", "hacen", "hacer", "haces", "hacia", "hago", "han", "hasta", "hay",
	"he", "hemos", "hoy", "incluso", "intenta", "intentamos", "intentan", "intentar", "intentas",
	"intento", "ir", "jamás", "junto", "juntos", "la", "las", "le", "les", "lo", "los", "luego",
	"mal", "más", "me", "menos", "mi", "mí", "mientras", "mis", "misma", "mismas", "mismo", "mismos",
	"modo", "mucha", "muchas", "mucho", "muchos", "muy", "nada", "nadie", "ni", "ninguna", "ningunas",
	"ninguno", "ningunos", "no", "nos", "nosotras", "nosotros", "nuestra", "nuestras", "nuestro",
	"nuestros", "nunca", "o", "os", "otra", "otras", "otro", "otros", "para", "pero", "poca", "pocas",
	"poco", "pocos", "podemos", "poder", "podría", "podrían", "por", "porque", "primero", "puede",
	"pueden", "puedo", "pues", "que", "qué", "quien", "quién", "quienes", "se", "sea", "sean", "según",
	"ser", "si", "sí", "siempre", "siendo", "sin", "sino", "sobre", "sois", "solamente", "solo",
	"sólo", "somos", "son", "soy", "su", "sus", "también", "tampoco", "tan", "tanto", "te", "tendrá",
	"tendrán", "tenemos", "tener", "tenga", "tengo", "tenía", "tenido", "tiene", "tienen", "toda",
	"todas", "todavía", "todo", "todos", "trabaja", "trabajais", "trabajamos", "trabajan", "trabajar",
	"trabajas", "trabajo", "tras", "tu", "tú", "tus", "tuvo", "u", "un", "una", "unas", "uno", "unos", "usa",
	"usamos", "usan", "usar", "usas", "usted", "ustedes", "va", "vamos", "van", "varias", "varios",
	"vez", "vosotras", "vosotros", "vuestra", "vuestras", "vuestro", "vuestros", "y", "ya", "yo",
)

var (
	regularAr = []string{
		"buscar", "trabajar", "desarrollar", "gestionar", "participar", "colaborar", "liderar", "diseñar",
		"implementar", "programar", "manejar", "utilizar", "usar", "formar", "incorporar", "valorar",
		"necesitar", "integrar", "optimizar", "analizar", "crear", "coordinar", "administrar",
		"automatizar", "documentar", "mejorar", "apoyar", "aportar", "brindar", "garantizar", "asegurar",
		"realizar", "estudiar", "dominar", "comunicar", "presentar", "ayudar", "contratar", "solicitar",
		"interesar", "ubicar", "entregar", "planificar", "supervisar", "reportar", "seleccionar",
		"postular", "aplicar", "enviar", "llevar", "acompañar", "desplegar", "configurar", "migrar",
		"negociar", "evaluar", "capacitar",
	}
	regularEr = []string{
		"ofrecer", "conocer", "aprender", "comprender", "poseer", "deber", "crecer", "responder",
		"proveer", "establecer", "fortalecer", "pertenecer", "emprender", "ejercer",
	}
	regularIr = []string{
		"escribir", "describir", "permitir", "recibir", "compartir", "definir", "asumir", "cumplir",
		"dirigir", "vivir", "decidir", "añadir", "exigir", "residir", "asistir", "reducir", "producir",
	}

	arEndings = []string{
		"ar", "as", "a", "amos", "áis", "an", "é", "aste", "ó", "asteis", "aron",
		"aba", "abas", "ábamos", "abais", "aban", "ando", "ado", "ada", "ados", "adas",
		"aré", "ará", "aremos", "arán", "aría", "arían",
	}
	erEndings = []string{
		"er", "es", "e", "emos", "éis", "en", "í", "iste", "ió", "isteis", "ieron",
		"ía", "ías", "íamos", "íais", "ían", "iendo", "ido", "ida", "idos", "idas",
		"eré", "erá", "eremos", "erán", "ería", "erían",
	}
	irEndings = []string{
		"ir", "es", "e", "imos", "ís", "en", "í", "iste", "ió", "isteis", "ieron",
		"ía", "ías", "íamos", "íais", "ían", "iendo", "ido", "ida", "idos", "idas",
		"iré", "irá", "iremos", "irán", "iría", "irían",
	}

	// firstPersonForms are first person singular forms of regular verbs that
	// are not also common nouns.
	firstPersonForms = map[string]string{
		"busco": "buscar", "utilizo": "utilizar", "participo": "participar", "colaboro": "colaborar",
		"lidero": "liderar", "necesito": "necesitar", "realizo": "realizar", "gestiono": "gestionar",
		"programo": "programar", "ofrezco": "ofrecer", "conozco": "conocer", "aprendo": "aprender",
		"poseo": "poseer", "escribo": "escribir", "resido": "residir", "cumplo": "cumplir",
		"crezco": "crecer", "establezco": "establecer",
	}

	irregularVerbs = map[string][]string{
		"tener": {"tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen", "tenía", "tenías", "teníamos",
			"tenían", "tuve", "tuvo", "tuvimos", "tuvieron", "tendré", "tendrá", "tendremos", "tendrán",
			"tendría", "tenido", "teniendo", "tenga", "tengan"},
		"mantener": {"mantengo", "mantienes", "mantiene", "mantenemos", "mantienen", "mantenía",
			"mantuvo", "mantendrá", "mantenido", "manteniendo"},
		"obtener": {"obtengo", "obtiene", "obtenemos", "obtienen", "obtuvo", "obtenido", "obteniendo"},
		"hacer": {"hago", "haces", "hace", "hacemos", "hacen", "hacía", "hacían", "hice", "hizo",
			"hicimos", "hicieron", "haré", "hará", "harán", "haría", "haciendo", "haga", "hagan"},
		"poder": {"puedo", "puedes", "puede", "podemos", "pueden", "podía", "podían", "pudo", "pudieron",
			"podrá", "podrán", "podría", "podrían", "podido", "pudiendo", "pueda", "puedan"},
		"querer": {"quiero", "quieres", "quiere", "queremos", "quieren", "quería", "quisiera", "querido"},
		"requerir": {"requiero", "requiere", "requieres", "requerimos", "requieren", "requería",
			"requerían", "requirió", "requerido", "requerida", "requeridos", "requeridas", "requiriendo",
			"requiera", "requieran"},
		"preferir": {"prefiero", "prefiere", "preferimos", "prefieren", "preferido", "preferida"},
		"incluir":  {"incluyo", "incluye", "incluyes", "incluimos", "incluyen", "incluía", "incluyó", "incluido", "incluida", "incluidos", "incluidas", "incluyendo"},
		"construir": {"construyo", "construye", "construimos", "construyen", "construyó", "construido",
			"construida", "construyendo"},
		"contribuir": {"contribuyo", "contribuye", "contribuimos", "contribuyen", "contribuido", "contribuyendo"},
		"resolver":   {"resuelvo", "resuelve", "resolvemos", "resuelven", "resuelto", "resolviendo"},
		"poner":      {"pongo", "pone", "ponemos", "ponen", "puso", "poniendo"},
		"decir":      {"digo", "dice", "decimos", "dicen", "dijo", "diciendo"},
		"venir":      {"vengo", "viene", "venimos", "vienen", "venido", "viniendo"},
		"saber":      {"sabe", "sabemos", "saben", "sabía", "supo", "sabido", "sabiendo"},
		"contar":     {"contamos", "cuentan", "contaba", "contó", "contado", "contando"},
		"encontrar":  {"encuentra", "encontramos", "encuentran", "encontrado", "encontrando"},
		"mostrar":    {"mostramos", "muestran", "mostrado", "mostrando"},
		"probar":     {"pruebo", "probamos", "prueban", "probado", "probando"},
		"seguir":     {"sigo", "sigue", "seguimos", "siguen", "seguido", "siguiendo"},
		"pedir":      {"pido", "pide", "pedimos", "piden", "pidiendo"},
		"ir":         {"voy", "vas", "va", "vamos", "van", "iba", "iban", "yendo"},
		"dar":        {"doy", "das", "da", "damos", "dan", "dio", "dando"},
		"ver":        {"veo", "ves", "ve", "vemos", "ven", "vio", "visto", "viendo"},
	}
)

// buildVerbForms expands the verb lists into a form to infinitive table.
func buildVerbForms() map[string]string {
	forms := make(map[string]string)

	conjugate := func(verbs, endings []string) {
		for _, inf := range verbs {
			stem := inf[:len(inf)-2]
			for _, ending := range endings {
				forms[stem+ending] = inf
			}
		}
	}
	conjugate(regularAr, arEndings)
	conjugate(regularEr, erEndings)
	conjugate(regularIr, irEndings)

	for form, inf := range firstPersonForms {
		forms[form] = inf
	}
	for inf, list := range irregularVerbs {
		forms[inf] = inf
		for _, form := range list {
			forms[form] = inf
		}
	}

	return forms
}
