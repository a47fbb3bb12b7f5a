//go:generate go run go.uber.org/mock/mockgen -source=binder_service.go -destination=../mocks/mock_binder_service.go -package=mocks
package services

import (
	"chat-rpc/domain/binder"
	"chat-rpc/errors"
	"chat-rpc/repositories"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IBinderService interface {
	Register(entry binder.Entry) (bool, string, error)
	Lookup(procedure string) (binder.Entry, bool, error)
}

type BinderService struct {
	log             *slog.Logger
	entryRepository repositories.IEntryRepository
}

func NewBinderService(log *slog.Logger, repo repositories.IEntryRepository) IBinderService {
	return &BinderService{log: log, entryRepository: repo}
}

// Register stores the location of a procedure. Registering a known procedure
// is a normal outcome, reported by false: the first registration wins.
func (s *BinderService) Register(entry binder.Entry) (bool, string, error) {
	if err := validate.Struct(entry); err != nil {
		return false, "", fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	created, err := s.entryRepository.CreateEntry(entry)
	if err != nil {
		return false, "", fmt.Errorf("registering %s failed: %w", entry.Procedure, err)
	}
	if !created {
		s.log.Warn("Procedure already registered", "procedure", entry.Procedure, "rejected", entry.Target())
		return false, fmt.Sprintf("procedure %s already registered", entry.Procedure), nil
	}
	s.log.Info("Procedure registered", "procedure", entry.Procedure, "target", entry.Target())
	return true, fmt.Sprintf("procedure %s registered", entry.Procedure), nil
}

// Lookup reports false when nothing is registered under the procedure name.
func (s *BinderService) Lookup(procedure string) (binder.Entry, bool, error) {
	entry, found, err := s.entryRepository.GetEntry(procedure)
	if err != nil {
		return binder.Entry{}, false, fmt.Errorf("looking up %s failed: %w", procedure, err)
	}
	if !found {
		s.log.Debug("Procedure not found", "procedure", procedure)
	}
	return entry, found, nil
}
