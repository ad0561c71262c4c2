package patients

import "context"

type Repository interface {
	Create(ctx context.Context, p Patient) error
	Update(ctx context.Context, p Patient) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Patient, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]Patient, error)
}

// AddressLookup resuelve un CEP a dirección. La implementación real
// pega a un servicio externo; en tests se reemplaza por un fake.
type AddressLookup interface {
	Lookup(ctx context.Context, cep string) (Address, error)
}
