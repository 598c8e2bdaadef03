package curriculum

// Domain represents a literacy content domain.
type Domain string

const (
	DomainVocales     Domain = "vocales"
	DomainSilabas     Domain = "silabas"
	DomainPalabras    Domain = "palabras"
	DomainFrases      Domain = "frases"
	DomainCuentos     Domain = "cuentos"
	DomainComprension Domain = "comprension"
)

// AllDomains returns all domains in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainVocales,
		DomainSilabas,
		DomainPalabras,
		DomainFrases,
		DomainCuentos,
		DomainComprension,
	}
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainVocales:
		return "Vocales"
	case DomainSilabas:
		return "Sílabas"
	case DomainPalabras:
		return "Palabras"
	case DomainFrases:
		return "Frases"
	case DomainCuentos:
		return "Cuentos"
	case DomainComprension:
		return "Comprensión"
	default:
		return string(d)
	}
}

// Skill represents a single literacy skill node in the curriculum graph.
type Skill struct {
	ID            string
	Name          string
	Description   string
	Domain        Domain
	Level         int // curriculum level, 1 (pre-readers) through 4 (fluent)
	AgeMin        int
	AgeMax        int
	Keywords      []string
	Prerequisites []string
}

// InAgeRange reports whether the skill is appropriate for the given age.
// A zero AgeMax means no upper bound.
func (s *Skill) InAgeRange(age int) bool {
	if age < s.AgeMin {
		return false
	}
	if s.AgeMax > 0 && age > s.AgeMax {
		return false
	}
	return true
}
