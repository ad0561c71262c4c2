package doctors

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"medical-practice/internal/platform/brdoc"
	"medical-practice/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrWeakPassword       = errors.New("weak password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrCPFTaken           = errors.New("cpf already registered")
	ErrCRMTaken           = errors.New("crm already registered")
	ErrBadCredentials     = errors.New("bad credentials")
	ErrNotFound           = errors.New("not found")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrPasswordsDontMatch = errors.New("passwords don't match")
)

const resetTokenTTL = time.Hour

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	log    *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.TokenIssuer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		issuer: issuer,
		log:    log,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name            string
	Email           string
	CPF             string
	CRM             string
	CRMUF           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Register valida todo client-side-equivalente antes de escribir:
// nada inválido llega al repositorio.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Doctor, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	crm := strings.TrimSpace(in.CRM)

	if email == "" || !strings.Contains(email, "@") {
		return Doctor{}, ErrInvalidInput
	}
	// Nombre completo: al menos dos palabras.
	if len(strings.Fields(name)) < 2 {
		return Doctor{}, ErrInvalidInput
	}
	if !brdoc.ValidCPF(in.CPF) {
		return Doctor{}, ErrInvalidInput
	}
	if len(crm) < 3 {
		return Doctor{}, ErrInvalidInput
	}
	if !brdoc.StrongPassword(in.Password) {
		return Doctor{}, ErrWeakPassword
	}
	if in.Password != in.ConfirmPassword {
		return Doctor{}, ErrPasswordsDontMatch
	}

	cpf := brdoc.Digits(in.CPF)

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Doctor{}, ErrEmailTaken
	}
	if _, err := s.repo.GetByCPF(ctx, cpf); err == nil {
		return Doctor{}, ErrCPFTaken
	}
	if _, err := s.repo.GetByCRM(ctx, crm); err == nil {
		return Doctor{}, ErrCRMTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Doctor{}, err
	}

	now := s.now()
	d := Doctor{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		CPF:          cpf,
		CRM:          crm,
		CRMUF:        strings.TrimSpace(in.CRMUF),
		Phone:        brdoc.Digits(in.Phone),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Doctor{}, err
	}
	return d, nil
}

// Login exige apenas largo >= 6: el registro pone la vara alta,
// el login replica el mínimo del proveedor de identidad original.
func (s *Service) Login(ctx context.Context, email, password string) (Doctor, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 6 {
		return Doctor{}, "", ErrBadCredentials
	}

	d, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Doctor{}, "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)) != nil {
		return Doctor{}, "", ErrBadCredentials
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{UserID: d.ID, Email: d.Email})
	if err != nil {
		s.log.Error("issue token", zap.Error(err))
		return Doctor{}, "", err
	}
	return d, token, nil
}

// RequestPasswordReset genera un token de un solo uso. No revela si el
// email existe; el token se loguea (no hay mailer en este servicio).
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidInput
	}

	d, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}

	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	now := s.now()
	exp := now.Add(resetTokenTTL)
	d.ResetToken = token
	d.ResetTokenExpires = &exp
	d.UpdatedAt = now

	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}

	s.log.Info("password reset requested", zap.String("doctor_id", d.ID), zap.String("token", token))
	return nil
}

// ConfirmPasswordReset aplica la política fuerte a la contraseña nueva.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrResetTokenInvalid
	}
	if !brdoc.StrongPassword(newPassword) {
		return ErrWeakPassword
	}

	d, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		return ErrResetTokenInvalid
	}
	if d.ResetTokenExpires == nil || s.now().After(*d.ResetTokenExpires) {
		return ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	d.PasswordHash = string(hash)
	d.ResetToken = ""
	d.ResetTokenExpires = nil
	d.UpdatedAt = s.now()

	return s.repo.Update(ctx, d)
}

func (s *Service) GetByID(ctx context.Context, id string) (Doctor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Doctor{}, ErrInvalidInput
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Doctor{}, ErrNotFound
	}
	return d, nil
}

type UpdateProfileInput struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// UpdateProfile es un merge parcial: nil = no tocar.
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Doctor, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Doctor{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(strings.Fields(name)) < 2 {
			return Doctor{}, ErrInvalidInput
		}
		d.Name = name
	}
	if in.Phone != nil {
		d.Phone = brdoc.Digits(*in.Phone)
	}
	if in.Avatar != nil {
		d.Avatar = strings.TrimSpace(*in.Avatar)
	}

	d.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, d); err != nil {
		return Doctor{}, err
	}
	return d, nil
}
