package story

import (
	"fmt"
	"strings"
)

const storySystemPrompt = `Eres un escritor de cuentos infantiles en español. Escribes historias cortas, alegres y apropiadas para niños pequeños que están aprendiendo a leer.`

func buildStoryUserMessage(input Input) string {
	var b strings.Builder

	cfg := input.Nivel.Config()
	pages := PageBoundsFor(input.Nivel)

	b.WriteString(fmt.Sprintf("Tema: %s\n", input.Topic))
	b.WriteString(fmt.Sprintf("Edad del lector: %d años\n", input.Age))
	b.WriteString(fmt.Sprintf("Nivel de lectura: %d (de 1 a 4)\n", int(input.Nivel)))

	if len(input.Interests) > 0 {
		b.WriteString(fmt.Sprintf("Intereses del lector: %s\n", strings.Join(input.Interests, ", ")))
	}

	b.WriteString(fmt.Sprintf(`
Instrucciones:
Escribe un cuento corto dividido en páginas:
1. El cuento debe tener entre %d y %d páginas.
2. Cada página debe tener entre %d y %d palabras.
3. Usa frases cortas y vocabulario sencillo, adecuado para el nivel de lectura indicado.
4. Usa español correcto con todos los acentos y signos de puntuación (¿, ¡, ñ, tildes).
5. El cuento debe ser positivo y tener un final feliz. Nada de miedo ni violencia.
6. Si hay intereses del lector, intenta incluirlos de forma natural en la historia.`,
		pages.Min, pages.Max, cfg.MinPageWords, cfg.MaxPageWords))

	return b.String()
}
