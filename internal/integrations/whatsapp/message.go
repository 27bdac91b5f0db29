package whatsapp

import (
	"fmt"
	"strings"

	"github.com/masterbarber/MB-BookingService/internal/domain"
)

const messageDateFormat = "02/01/2006"

// BuildBookingMessage собирает текст уведомления о новом бронировании
// на португальском - языке владельца барбершопа
func BuildBookingMessage(booking *domain.Booking, serviceNames []string) string {
	var b strings.Builder

	b.WriteString("*Novo Agendamento - Master Barber*\n\n")
	b.WriteString(fmt.Sprintf("*Nome:* %s\n", booking.Name))
	b.WriteString(fmt.Sprintf("*Telefone:* %s\n", booking.Phone))
	b.WriteString(fmt.Sprintf("*Serviços:* %s\n", strings.Join(serviceNames, ", ")))
	b.WriteString(fmt.Sprintf("*Data:* %s\n", booking.BookingDate.Format(messageDateFormat)))

	if booking.IsWalkIn() {
		b.WriteString("*Horário:* ordem de chegada\n")
	} else {
		b.WriteString(fmt.Sprintf("*Horário:* %s\n", booking.StartTime))
	}

	b.WriteString(fmt.Sprintf("*Valor Total:* %s", FormatPrice(booking.TotalPriceCents)))

	return b.String()
}

// FormatPrice форматирует цену в сентаво как бразильские реалы: "R$ 40,00"
func FormatPrice(cents int64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
