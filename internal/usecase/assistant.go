package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"quinta-booking/internal/pkg/errs"
	"quinta-booking/internal/usecase/queries"
)

var ErrAssistantUnavailable = errs.New("assistant unavailable")

// ChatClient is the model backend. A nil client is valid and drops the
// assistant into canned-answer mode.
type ChatClient interface {
	Generate(ctx context.Context, systemInstruction, message string) (string, error)
}

type AssistantUseCase interface {
	Chat(ctx context.Context, message string) (string, error)
}

type assistantUseCaseImpl struct {
	client          ChatClient
	propertyQueries queries.PropertyQueries
	pricingQueries  queries.PricingQueries
}

func NewAssistantUseCase(client ChatClient, propertyQueries queries.PropertyQueries, pricingQueries queries.PricingQueries) AssistantUseCase {
	return &assistantUseCaseImpl{
		client:          client,
		propertyQueries: propertyQueries,
		pricingQueries:  pricingQueries,
	}
}

// Chat answers a public visitor question grounded in the current property
// configuration. The assistant is read-only: it never creates or confirms
// bookings, it points visitors at the calendar and the request form.
func (a *assistantUseCaseImpl) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrAssistantUnavailable
	}

	property, err := a.propertyQueries.Get(ctx)
	if err != nil {
		return "", errs.Mark(err, ErrAssistantUnavailable)
	}

	if a.client == nil {
		return cannedAnswer(message, property), nil
	}

	rules, err := a.pricingQueries.Rules(ctx)
	if err != nil {
		return "", errs.Mark(err, ErrAssistantUnavailable)
	}

	answer, err := a.client.Generate(ctx, systemInstruction(property, rules), message)
	if err != nil {
		slog.Warn("assistant backend failed, falling back to canned answer", "error", err)
		return cannedAnswer(message, property), nil
	}
	return answer, nil
}

// The house rules text is inlined verbatim so the model quotes policy
// instead of improvising it.
func systemInstruction(p *queries.PropertyView, rules *queries.RulesView) string {
	var sb strings.Builder
	sb.WriteString("INSTRUCCIONES PRINCIPALES:\n")
	sb.WriteString(p.AssistantInstruction)
	sb.WriteString("\n\nREGLAS, POLITICAS Y CONDICIONES (CRITICO):\n")
	sb.WriteString(p.RulesAndPolicies)
	sb.WriteString("\n\nINFORMACION DE LA PROPIEDAD:\n")
	fmt.Fprintf(&sb, "- Nombre: %s\n", p.Name)
	fmt.Fprintf(&sb, "- Capacidad Maxima: %d personas\n", p.MaxCapacity)
	fmt.Fprintf(&sb, "- Direccion: %s\n", p.Address)
	fmt.Fprintf(&sb, "- Precio Base por Dia/Noche: $%d\n", rules.DailyPrice)
	sb.WriteString("\nCOMPORTAMIENTO:\n")
	sb.WriteString("- Responde siempre basandote en las REGLAS Y POLITICAS arriba mencionadas.\n")
	sb.WriteString("- Si te preguntan por mascotas, ruidos, vehiculos o cancelaciones, usa estrictamente el texto de las reglas.\n")
	sb.WriteString("- NO confirmes reservas. Guia al usuario al calendario y formulario.\n")
	sb.WriteString("- Tono: amable, comercial y resolutivo.\n")
	return sb.String()
}

func cannedAnswer(message string, p *queries.PropertyView) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "regla") || strings.Contains(lower, "norma") || strings.Contains(lower, "puedo"):
		rules := truncateRunes(p.RulesAndPolicies, 200)
		return fmt.Sprintf("Sobre las normas de la casa: %s... Podes ver el detalle completo en la seccion de informacion de la web.", rules)
	case strings.Contains(lower, "precio"):
		return "El precio se calcula automaticamente en el calendario segun la fecha y cantidad de personas."
	case strings.Contains(lower, "disponible"):
		return "Podes consultar la disponibilidad real directamente en el calendario de nuestra web."
	default:
		return fmt.Sprintf("Hola! Soy el asistente de %s. En que puedo ayudarte?", p.Name)
	}
}

// truncateRunes cuts s after at most n runes, never inside a multi-byte
// character. The policy text is Spanish and carries accented characters.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
