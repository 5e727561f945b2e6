package admin

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/clock"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage"
)

// Service is the password-gated admin role check. With no credential
// stored the gate is open and any password verifies; the first
// SetPassword closes it.
type Service struct {
	storage storage.Storage
	audit   *audit.Recorder
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates an admin service
func New(storage storage.Storage, audit *audit.Recorder, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		audit:   audit,
		clock:   clock,
		logger:  logger,
	}
}

// Verify checks a password against the stored credential
func (s *Service) Verify(ctx context.Context, password string) error {
	cred, err := s.storage.GetAdminCredential(ctx)
	if errors.Is(err, model.ErrCredentialNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return model.ErrInvalidPassword
	}
	return nil
}

// SetPassword stores a new bcrypt credential
func (s *Service) SetPassword(ctx context.Context, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	cred := &model.AdminCredential{
		PasswordHash: string(hash),
		UpdatedAt:    s.clock.Now(),
	}
	if err := s.storage.SaveAdminCredential(ctx, cred); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.TypeAdminPassword, nil)
	s.logger.Info("admin password changed")
	return nil
}

// ServiceInterface defines the admin service API
type ServiceInterface interface {
	Verify(ctx context.Context, password string) error
	SetPassword(ctx context.Context, password string) error
}

var _ ServiceInterface = (*Service)(nil)
