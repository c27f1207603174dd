package dictionary

import "sync"

// defaultEntries is the built-in academic vocabulary shipped with the module.
// Keys are English, values Spanish; multi-word phrases stay hyphen-joined so
// idiomatic compounds translate as a unit instead of word by word. Loanwords
// kept unchanged in Spanish (e.g. "insights") map to themselves.
var defaultEntries = map[string]string{
	// single tokens
	"phd":          "doctorado",
	"masters":      "maestria",
	"admissions":   "admisiones",
	"funding":      "financiacion",
	"scholarships": "becas",
	"fellowships":  "fellowships",
	"research":     "investigacion",
	"linguistics":  "linguistica",
	"literature":   "literatura",
	"history":      "historia",
	"philosophy":   "filosofia",
	"insights":     "insights",
	"guides":       "guias",
	"resources":    "recursos",
	"programs":     "programas",
	"requirements": "requisitos",
	"deadlines":    "plazos",
	"applications": "solicitudes",
	"students":     "estudiantes",
	"faculty":      "profesorado",
	"university":   "universidad",
	"college":      "facultad",
	"school":       "escuela",
	"department":   "departamento",
	"courses":      "cursos",
	"degrees":      "titulos",
	"thesis":       "tesis",
	"dissertation": "disertacion",
	"advisor":      "asesor",
	"mentoring":    "mentoria",
	"careers":      "carreras",
	"teaching":     "ensenanza",
	"writing":      "escritura",
	"reading":      "lectura",
	"language":     "idioma",
	"languages":    "idiomas",
	"grammar":      "gramatica",
	"translation":  "traduccion",
	"conferences":  "congresos",
	"journals":     "revistas",
	"publishing":   "publicacion",
	"spanish":      "espanol",
	"english":      "ingles",
	"of":           "de",
	"and":          "y",
	"for":          "para",
	"with":         "con",

	// idiomatic phrases; translated as units
	"spanish-linguistics":          "linguistica-espanola",
	"spanish-literature":           "literatura-espanola",
	"english-literature":           "literatura-inglesa",
	"funding-strategies":           "estrategias-de-financiacion",
	"translation-and-interpreting": "traduccion-e-interpretacion",
	"graduate-school":              "escuela-de-posgrado",
	"financial-aid":                "ayuda-financiera",
	"study-abroad":                 "estudios-en-el-extranjero",
	"academic-writing":             "escritura-academica",
	"literature-review":            "revision-de-literatura",
	"research-methods":             "metodos-de-investigacion",
	"research-proposal":            "propuesta-de-investigacion",
	"open-access":                  "acceso-abierto",
	"peer-review":                  "revision-por-pares",
	"higher-education":             "educacion-superior",
	"letters-of-recommendation":    "cartas-de-recomendacion",
	"statement-of-purpose":         "declaracion-de-intenciones",
	"application-deadlines":        "plazos-de-solicitud",
	"tuition-waivers":              "exenciones-de-matricula",
	"teaching-assistantships":      "ayudantias-de-ensenanza",
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the built-in dictionary. The table is validated once at
// first use; a failure here means the shipped data itself is inconsistent.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		dict, err := New(defaultEntries)
		if err != nil {
			panic("dictionary: built-in table is invalid: " + err.Error())
		}
		defaultDict = dict
	})
	return defaultDict
}
