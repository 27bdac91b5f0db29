package domain

import (
	"errors"
	"fmt"
)

// Service is an immutable catalog entry
type Service struct {
	ID              string
	Name            string
	PriceCents      int64
	DurationMinutes int
}

// ErrUnknownService возвращается при ссылке на отсутствующую в каталоге услугу
var ErrUnknownService = errors.New("domain: unknown service")

// serviceCatalog справочник услуг барбершопа. Референсные данные,
// общие для всего процесса.
var serviceCatalog = []Service{
	{ID: "corte", Name: "Corte Tradicional", PriceCents: 4000, DurationMinutes: 30},
	{ID: "barba", Name: "Barba Completa", PriceCents: 2500, DurationMinutes: 20},
	{ID: "combo", Name: "Combo Premium", PriceCents: 6000, DurationMinutes: 50},
	{ID: "coloracao", Name: "Coloração", PriceCents: 8000, DurationMinutes: 90},
}

// ServiceCatalog returns all catalog entries in display order
func ServiceCatalog() []Service {
	out := make([]Service, len(serviceCatalog))
	copy(out, serviceCatalog)
	return out
}

// LookupService returns the catalog entry for the given id
func LookupService(id string) (Service, error) {
	for _, s := range serviceCatalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("%w: %q", ErrUnknownService, id)
}

// CalculateTotalDuration суммирует длительности выбранных услуг
func CalculateTotalDuration(serviceIDs []string) (int, error) {
	total := 0
	for _, id := range serviceIDs {
		svc, err := LookupService(id)
		if err != nil {
			return 0, err
		}
		total += svc.DurationMinutes
	}
	return total, nil
}

// CalculateTotalPrice суммирует цены выбранных услуг в центах
func CalculateTotalPrice(serviceIDs []string) (int64, error) {
	var total int64
	for _, id := range serviceIDs {
		svc, err := LookupService(id)
		if err != nil {
			return 0, err
		}
		total += svc.PriceCents
	}
	return total, nil
}
