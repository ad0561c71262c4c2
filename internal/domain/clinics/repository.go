package clinics

import "context"

type Repository interface {
	Create(ctx context.Context, c Clinic) error
	Update(ctx context.Context, c Clinic) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Clinic, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]Clinic, error)
}
