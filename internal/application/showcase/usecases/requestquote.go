package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/whatsapp"
)

type RequestQuoteCommand struct {
	Name        string
	Company     string
	City        string
	Phone       string
	Need        string
	MachineSlug string
}

type RequestQuoteResult struct {
	WhatsAppURL string
}

// RequestQuoteUseCase turns a public quote form submission into a wa.me
// deep link addressed to the configured sales number.
type RequestQuoteUseCase struct {
	showcaseRepo showcase.Repository
	settingRepo  sitesetting.Repository
	defaults     sitesetting.Defaults
	logger       logger.Interface
}

func NewRequestQuoteUseCase(
	showcaseRepo showcase.Repository,
	settingRepo sitesetting.Repository,
	defaults sitesetting.Defaults,
	logger logger.Interface,
) *RequestQuoteUseCase {
	return &RequestQuoteUseCase{
		showcaseRepo: showcaseRepo,
		settingRepo:  settingRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

func (uc *RequestQuoteUseCase) Execute(ctx context.Context, cmd RequestQuoteCommand) (*RequestQuoteResult, error) {
	if cmd.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if cmd.Phone == "" {
		return nil, errors.NewValidationError("phone is required")
	}

	machineName := ""
	if cmd.MachineSlug != "" {
		m, err := uc.showcaseRepo.FindActiveBySlug(ctx, cmd.MachineSlug)
		if err != nil {
			return nil, err
		}
		machineName = m.Name()
	}

	number, err := uc.resolveNumber(ctx)
	if err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errors.NewInternalError("no WhatsApp number configured")
	}

	link := whatsapp.BuildQuoteLink(number, whatsapp.QuoteRequest{
		Name:    cmd.Name,
		Company: cmd.Company,
		City:    cmd.City,
		Phone:   cmd.Phone,
		Need:    cmd.Need,
		Machine: machineName,
	})

	uc.logger.Infow("quote link built", "machine_slug", cmd.MachineSlug)

	return &RequestQuoteResult{WhatsAppURL: link}, nil
}

func (uc *RequestQuoteUseCase) resolveNumber(ctx context.Context) (string, error) {
	setting, err := uc.settingRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return sitesetting.ResolveDefaults(uc.defaults).WhatsAppNumber, nil
	}
	return setting.Resolve(uc.defaults).WhatsAppNumber, nil
}
