package ai

import (
	"context"
	"fmt"
	"strings"
)

// TemplateGenerator interpolates fixed Spanish templates. No model behind
// it; the output matches what the product shipped before PoppyAI went live.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) CoachReply(_ context.Context, message string) (string, error) {
	reply := fmt.Sprintf(`¡Hola! 👋 Entiendo que %s.

Desde la metodología Softvibes1, te sugiero:

1. **Diagnóstico**: Identifica dónde estás (SER/HACER/TENER)
2. **Prioridad**: ¿Qué es lo más importante AHORA?
3. **Acción**: ¿Cuál es el siguiente paso más simple?

¿Quieres que te ayude con algo específico?

Buena vibra 🗿`, message)
	return strings.TrimSpace(reply), nil
}

func (g *TemplateGenerator) Manifesto(_ context.Context, in ManifestoInput) (string, error) {
	manifesto := fmt.Sprintf(`# Manifiesto de %s

## Nuestra Promesa
Transformamos %s en acción concreta.

## Nuestra Misión
%s

## Nuestro Superpoder
%s

---

Generado por LifeVibes 🗿`, in.Usuario, in.Valores, in.Proposito, in.Superpoder)
	return strings.TrimSpace(manifesto), nil
}
