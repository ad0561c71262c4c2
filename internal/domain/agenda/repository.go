package agenda

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]Appointment, error)
}
