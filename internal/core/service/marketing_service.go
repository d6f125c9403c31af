package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/pkg/validation"
)

const (
	MessageFallback   = "Hubo un error al generar el mensaje. Por favor, inténtalo de nuevo."
	AssistantFallback = "Lo siento, ocurrió un error. Por favor intenta de nuevo."
	MissingAPIKey     = "Error: La clave API de Gemini no está configurada. Por favor, configura la variable de entorno GEMINI_API_KEY."
)

// MarketingService builds prompts from salon data and delegates the wording to
// a TextGenerator. Generator failures never surface as errors: the caller gets
// a localized fallback text with Fallback set.
type MarketingService struct {
	gen          ports.TextGenerator // nil when no API key is configured
	appointments ports.AppointmentRepository
	clients      ports.ClientRepository
	products     ports.ProductRepository
	settings     ports.SettingsRepository
	today        func() domain.Date
	logger       zerolog.Logger
}

func NewMarketingService(
	gen ports.TextGenerator,
	appointments ports.AppointmentRepository,
	clients ports.ClientRepository,
	products ports.ProductRepository,
	settings ports.SettingsRepository,
	today func() domain.Date,
	logger zerolog.Logger,
) *MarketingService {
	return &MarketingService{
		gen:          gen,
		appointments: appointments,
		clients:      clients,
		products:     products,
		settings:     settings,
		today:        today,
		logger:       logger,
	}
}

// GenerateMessage writes a reminder, promotion or birthday message for one client.
func (s *MarketingService) GenerateMessage(ctx context.Context, req ports.MessageRequest) (*ports.GeneratedText, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	client, err := s.clients.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("generate message: %w", err)
	}
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate message: %w", err)
	}

	var prompt string
	switch req.Kind {
	case ports.MessageReminder:
		apps, err := s.appointments.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("generate message: %w", err)
		}
		next, ok := calendar.NextFor(apps, client.Name, s.today())
		if !ok {
			return nil, fmt.Errorf("generate message for %q: %w", client.Name, domain.ErrNoUpcomingAppointment)
		}
		prompt = reminderPrompt(profile.SalonName, client, next)
	case ports.MessagePromotion:
		promo := strings.TrimSpace(req.Promotion)
		if promo == "" {
			return nil, fmt.Errorf("%w: promotion is required", domain.ErrValidation)
		}
		prompt = promotionPrompt(profile.SalonName, client, promo)
	case ports.MessageBirthday:
		prompt = birthdayPrompt(profile.SalonName, client)
	}

	if s.gen == nil {
		return &ports.GeneratedText{Text: MissingAPIKey, Fallback: true}, nil
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).
			Str("kind", string(req.Kind)).
			Int64("client_id", client.ID).
			Msg("message generation failed")
		return &ports.GeneratedText{Text: MessageFallback, Fallback: true}, nil
	}
	return &ports.GeneratedText{Text: strings.TrimSpace(text)}, nil
}

// Ask answers the last user message of history with the salon data as context.
func (s *MarketingService) Ask(ctx context.Context, history []ports.ChatMessage) (*ports.GeneratedText, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: history is required", domain.ErrValidation)
	}
	for _, m := range history {
		if err := validation.Struct(m); err != nil {
			return nil, err
		}
	}
	if history[len(history)-1].Sender != ports.SenderUser {
		return nil, fmt.Errorf("%w: last message must come from the user", domain.ErrValidation)
	}

	system, err := s.assistantContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("ask assistant: %w", err)
	}

	if s.gen == nil {
		return &ports.GeneratedText{Text: MissingAPIKey, Fallback: true}, nil
	}

	text, err := s.gen.Chat(ctx, system, history)
	if err != nil {
		s.logger.Error().Err(err).Int("turns", len(history)).Msg("assistant call failed")
		return &ports.GeneratedText{Text: AssistantFallback, Fallback: true}, nil
	}
	return &ports.GeneratedText{Text: strings.TrimSpace(text)}, nil
}

func (s *MarketingService) assistantContext(ctx context.Context) (string, error) {
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return "", err
	}
	apps, err := s.appointments.All(ctx)
	if err != nil {
		return "", err
	}
	clients, err := s.clients.All(ctx)
	if err != nil {
		return "", err
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return "", err
	}
	prices, err := s.settings.Prices(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Eres Kandy, la asistente virtual del salón de manicura \"%s\", administrado por %s.\n", profile.SalonName, profile.OwnerName)
	b.WriteString("Responde en español, de forma breve y amable, usando solo los datos del salón que aparecen abajo.\n")
	fmt.Fprintf(&b, "Fecha de hoy: %s.\n\n", s.today())

	b.WriteString("Citas:\n")
	for _, a := range apps {
		fmt.Fprintf(&b, "- %s %s | %s | %s | %s\n", a.Date, a.Time, a.ClientName, strings.Join(a.Services, ", "), a.Status)
	}
	b.WriteString("\nClientes:\n")
	for _, c := range clients {
		fmt.Fprintf(&b, "- %s", c.Name)
		if !c.BirthDate.IsZero() {
			fmt.Fprintf(&b, " (cumpleaños %02d-%02d)", int(c.BirthDate.Month()), c.BirthDate.Day())
		}
		if c.Preferences != "" {
			fmt.Fprintf(&b, ": %s", c.Preferences)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nInventario:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s: %d unidades (mínimo %d)", p.Name, p.CurrentStock, p.MinStock)
		if p.LowStock() {
			b.WriteString(" [stock bajo]")
		}
		b.WriteString("\n")
	}
	b.WriteString("\nPrecios:\n")
	for _, name := range prices.Services() {
		fmt.Fprintf(&b, "- %s: $%s\n", name, prices[name].StringFixed(2))
	}
	return b.String(), nil
}

func reminderPrompt(salon string, c domain.Client, a domain.Appointment) string {
	return fmt.Sprintf(`Actúa como un asistente amigable de un salón de manicura llamado "%s".
Escribe un recordatorio de cita corto y alegre para WhatsApp.

Detalles del cliente:
- Nombre: %s

Detalles de la cita:
- Fecha: %s
- Hora: %s
- Servicio: %s

Instrucciones:
- Saluda al cliente por su nombre.
- Recuérdale su próxima cita.
- Menciona la fecha y la hora.
- Termina con un tono amigable, como "¡Estamos emocionados de verte!".
- Mantén el mensaje por debajo de 50 palabras.`, salon, c.Name, a.Date, a.Time, strings.Join(a.Services, ", "))
}

func promotionPrompt(salon string, c domain.Client, promotion string) string {
	return fmt.Sprintf(`Actúa como un asistente de marketing entusiasta de un salón de manicura llamado "%s".
Escribe un mensaje promocional corto y atractivo para WhatsApp.

Detalles del cliente:
- Nombre: %s

Detalles de la promoción:
- Oferta: "%s"

Instrucciones:
- Saluda al cliente por su nombre.
- Preséntale la promoción especial de una manera emocionante.
- Crea un sentido de urgencia o exclusividad.
- Anímale a reservar una cita para aprovechar la oferta.
- Mantén el mensaje por debajo de 60 palabras.`, salon, c.Name, promotion)
}

func birthdayPrompt(salon string, c domain.Client) string {
	return fmt.Sprintf(`Actúa como un asistente amigable y entusiasta de un salón de manicura llamado "%s".
Escribe un mensaje de cumpleaños muy alegre y festivo para WhatsApp.

Detalles del cliente:
- Nombre: %s

Instrucciones:
- Saluda al cliente por su nombre y deséale un muy feliz cumpleaños.
- Como regalo especial por su día, ofrécele un 20%% de descuento en su próximo servicio.
- Anímale a reservar una cita para celebrar y usar su descuento.
- Usa un tono muy festivo y personal.
- Mantén el mensaje por debajo de 60 palabras.`, salon, c.Name)
}
