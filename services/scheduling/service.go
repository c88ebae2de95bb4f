package scheduling

import (
	"context"

	"fletero/models"
	"fletero/services/calendar"
)

// SchedulingService defines the fleet scheduling operations exposed over HTTP.
type SchedulingService interface {
	// Search finds the first fleet unit serving the origin city with free
	// slots on the requested day.
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error)
	// Reserve books a slot on a specific calendar, writing the event upstream.
	Reserve(ctx context.Context, req models.ReserveRequest) (models.Reservation, error)
	// Fleet lists the parsed fleet roster.
	Fleet(ctx context.Context) ([]models.FleetUnit, error)
}

// DefaultSchedulingService is the production implementation. All booking state
// lives in the external calendar service; the engine itself is stateless and
// reads fresh on every call.
type DefaultSchedulingService struct {
	Directory calendar.Directory
}

func (s *DefaultSchedulingService) Fleet(ctx context.Context) ([]models.FleetUnit, error) {
	resources, err := s.Directory.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	units := make([]models.FleetUnit, 0, len(resources))
	for _, res := range resources {
		units = append(units, models.ParseFleetLabel(res.ID, res.Label))
	}
	return units, nil
}
