package documents

import "context"

type Repository interface {
	Create(ctx context.Context, d Document) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Document, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]Document, error)
}
