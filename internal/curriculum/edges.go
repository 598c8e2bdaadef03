package curriculum

// EdgeTableVersion identifies the hand-authored edge tables below.
// Bump when the tables change shape so persisted recommendations can be
// traced back to the table revision that produced them.
const EdgeTableVersion = 1

// DeepenEdges maps a skill to skills that go deeper on the same concept.
// These supplement the prerequisite graph: a deepen target is the natural
// "next step down" even when no hard prerequisite edge exists.
var DeepenEdges = map[string][]string{
	"vocal-u":             {"silabas-m"},
	"silabas-m":           {"silabas-p", "silabas-l"},
	"silabas-p":           {"silabas-s"},
	"silabas-l":           {"silabas-t"},
	"silabas-s":           {"silabas-n"},
	"silabas-n":           {"silabas-trabadas"},
	"palabras-bisilabas":  {"palabras-trisilabas", "palabras-frecuentes"},
	"palabras-frecuentes": {"frases-simples"},
	"frases-simples":      {"frases-preguntas"},
	"frases-preguntas":    {"frases-largas"},
	"cuentos-cortos":      {"cuentos-medianos"},
	"cuentos-medianos":    {"cuentos-capitulos"},
	"comprension-literal": {"comprension-inferencia"},
}

// ApplyBridges maps a skill to cross-domain skills where the concept is
// applied in a new context (sílabas inside palabras, palabras inside
// frases, cuentos feeding comprensión).
var ApplyBridges = map[string][]string{
	"vocal-a":              {"silabas-m"},
	"silabas-m":            {"palabras-bisilabas"},
	"silabas-p":            {"palabras-bisilabas"},
	"silabas-trabadas":     {"palabras-trabadas"},
	"palabras-bisilabas":   {"frases-simples"},
	"palabras-frecuentes":  {"cuentos-cortos"},
	"palabras-trabadas":    {"frases-largas"},
	"frases-simples":       {"cuentos-cortos"},
	"frases-preguntas":     {"comprension-literal"},
	"cuentos-cortos":       {"comprension-literal"},
	"cuentos-medianos":     {"comprension-inferencia"},
	"comprension-literal":  {"cuentos-medianos"},
}
