package usecase

import (
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

type AuthUC struct {
	store    auth.CredentialStore
	notifier auth.NotificationGW
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	store auth.CredentialStore,
	notifier auth.NotificationGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
	}
}
