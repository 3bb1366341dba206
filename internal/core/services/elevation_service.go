package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sdjishan552/fin/internal/apperrors"
	"github.com/Sdjishan552/fin/internal/core/domain"
	portsrepo "github.com/Sdjishan552/fin/internal/core/ports/repositories"
	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/utils"
)

// pinChecker verifies a PIN against the bcrypt hash in the settings store.
// It is the single CredentialChecker implementation; the elevation service
// only consumes the boolean outcome.
type pinChecker struct {
	settingRepo portsrepo.SettingRepositoryFacade
}

// NewPINChecker creates the store-backed credential checker.
func NewPINChecker(settingRepo portsrepo.SettingRepositoryFacade) portssvc.CredentialChecker {
	return &pinChecker{settingRepo: settingRepo}
}

var _ portssvc.CredentialChecker = (*pinChecker)(nil)

// Check reports whether secret matches the stored PIN hash. A missing hash
// surfaces as apperrors.ErrNotFound so callers can prompt for setup.
func (c *pinChecker) Check(ctx context.Context, secret string) (bool, error) {
	setting, err := c.settingRepo.FindSettingByKey(ctx, domain.SettingPINHash)
	if err != nil {
		return false, err
	}
	return utils.CheckPINHash(secret, setting.Value), nil
}

// elevationService manages the till PIN and issues date-bound elevation
// tokens. A token's subject is the date it was granted for, so switching the
// viewed date invalidates elevation by construction.
type elevationService struct {
	settingRepo portsrepo.SettingRepositoryFacade
	checker     portssvc.CredentialChecker
	secret      string
	expiry      time.Duration
	issuer      string
}

// NewElevationService creates the elevation gate.
func NewElevationService(settingRepo portsrepo.SettingRepositoryFacade, checker portssvc.CredentialChecker, secret string, expiry time.Duration, issuer string) portssvc.ElevationSvcFacade {
	return &elevationService{
		settingRepo: settingRepo,
		checker:     checker,
		secret:      secret,
		expiry:      expiry,
		issuer:      issuer,
	}
}

var _ portssvc.ElevationSvcFacade = (*elevationService)(nil)

// SetupPIN stores the bcrypt hash of a new PIN. Refused when one exists;
// there is no reset path short of wiping the store by hand.
func (s *elevationService) SetupPIN(ctx context.Context, pin string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(pin) != 4 {
		return fmt.Errorf("%w: PIN must be exactly 4 digits", apperrors.ErrValidation)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: PIN must be numeric", apperrors.ErrValidation)
		}
	}

	if _, err := s.settingRepo.FindSettingByKey(ctx, domain.SettingPINHash); err == nil {
		return fmt.Errorf("%w: PIN already configured", apperrors.ErrDuplicate)
	} else if !isNotFound(err) {
		return err
	}

	hash, err := utils.HashPIN(pin)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	setting := domain.Setting{
		Key:   domain.SettingPINHash,
		Value: hash,
		Alg:   "bcrypt",
	}
	if err := s.settingRepo.SaveSetting(ctx, setting); err != nil {
		return fmt.Errorf("failed to save PIN hash: %w", err)
	}

	logger.Info("Till PIN configured")
	return nil
}

// Unlock verifies the PIN and issues an elevation token bound to dateKey.
func (s *elevationService) Unlock(ctx context.Context, pin string, dateKey string) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ok, err := s.checker.Check(ctx, pin)
	if err != nil {
		if isNotFound(err) {
			return "", time.Time{}, fmt.Errorf("%w: no PIN configured", apperrors.ErrNotFound)
		}
		return "", time.Time{}, err
	}
	if !ok {
		logger.Warn("Elevation rejected, wrong PIN", slog.String("date_key", dateKey))
		return "", time.Time{}, fmt.Errorf("%w: wrong PIN", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateElevationToken(dateKey, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign elevation token: %w", err)
	}

	expiresAt := time.Now().Add(s.expiry)
	logger.Info("Past editing unlocked", slog.String("date_key", dateKey))
	return token, expiresAt, nil
}

// Verify reports whether token grants past editing for dateKey.
func (s *elevationService) Verify(token string, dateKey string) bool {
	claims, err := utils.ParseElevationToken(token, s.secret)
	if err != nil {
		return false
	}
	return claims.Subject == dateKey
}
