// Package scenario persists named plans for later reload and comparison.
package scenario

import (
	"context"
	"errors"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// ErrNotFound is returned when a named scenario does not exist. Callers
// report it; it is never fatal.
var ErrNotFound = errors.New("scenario not found")

// Store is simple named-plan persistence. Save overwrites an existing name.
type Store interface {
	Save(ctx context.Context, name string, plan *domain.Plan) error
	Load(ctx context.Context, name string) (*domain.Plan, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.ScenarioInfo, error)
}
