package doctors

import "context"

type Repository interface {
	Create(ctx context.Context, d Doctor) error
	Update(ctx context.Context, d Doctor) error
	GetByID(ctx context.Context, id string) (Doctor, error)
	GetByEmail(ctx context.Context, email string) (Doctor, error)
	GetByCPF(ctx context.Context, cpf string) (Doctor, error)
	GetByCRM(ctx context.Context, crm string) (Doctor, error)
	GetByResetToken(ctx context.Context, token string) (Doctor, error)
}
