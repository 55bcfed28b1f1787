package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"furnicraft/internal/domain/catalog"
	"furnicraft/internal/domain/entities"
	"furnicraft/internal/domain/fabricplan"
	"furnicraft/internal/domain/pricing"
	"furnicraft/internal/usecase/interfaces"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrSettingsNotFound = errors.New("category settings not found")
)

// Evaluation is the full result of validating and pricing one
// configuration against the current catalog state. Checkout reuses it
// to build line items and job cards without re-deriving anything.
type Evaluation struct {
	Configuration entities.Configuration
	Profile       catalog.Profile
	Base          entities.ProductBaseRecord
	Settings      entities.CategorySettings
	FabricRates   map[string]entities.FabricRate
	Breakdown     entities.PriceBreakdown
	FabricPlan    entities.FabricPlan
}

// IQuoteUseCase exposes live configuration pricing.
//
// Quote runs on every (debounced) configurator edit; it is stateless
// and side-effect free, so concurrent sessions need no coordination.
type IQuoteUseCase interface {
	Quote(ctx context.Context, cfg entities.Configuration) (entities.PriceBreakdown, error)
	Evaluate(ctx context.Context, cfg entities.Configuration) (Evaluation, error)
}

type QuoteUseCase struct {
	catalogRepo interfaces.ICatalogRepository
	fabricRepo  interfaces.IFabricLedgerRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(catalogRepo interfaces.ICatalogRepository, fabricRepo interfaces.IFabricLedgerRepository) *QuoteUseCase {
	return &QuoteUseCase{catalogRepo: catalogRepo, fabricRepo: fabricRepo}
}

func (u *QuoteUseCase) Quote(ctx context.Context, cfg entities.Configuration) (entities.PriceBreakdown, error) {
	ev, err := u.Evaluate(ctx, cfg)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	return ev.Breakdown, nil
}

func (u *QuoteUseCase) Evaluate(ctx context.Context, cfg entities.Configuration) (Evaluation, error) {
	cfg.ProductID = strings.TrimSpace(cfg.ProductID)
	if cfg.ProductID == "" {
		return Evaluation{}, ErrInvalidProductID
	}

	profile, err := catalog.Resolve(cfg.Category)
	if err != nil {
		return Evaluation{}, err
	}

	rates, err := u.loadFabricRates(ctx, cfg)
	if err != nil {
		return Evaluation{}, err
	}

	validated, err := catalog.ValidateConfiguration(profile, cfg, func(code string) bool {
		r, ok := rates[code]
		return ok && r.Active
	})
	if err != nil {
		return Evaluation{}, err
	}

	base, settings, err := u.loadCommercialData(ctx, validated.Category, validated.ProductID)
	if err != nil {
		return Evaluation{}, err
	}
	if base.ProductID == "" {
		return Evaluation{}, fmt.Errorf("%w: %s/%s", pricing.ErrProductNotFound, validated.Category, validated.ProductID)
	}
	if settings.Category == "" {
		return Evaluation{}, fmt.Errorf("%w: %s", ErrSettingsNotFound, validated.Category)
	}

	breakdown, err := pricing.Calculate(pricing.Input{
		Profile:       profile,
		Base:          base,
		Settings:      settings,
		FabricRates:   rates,
		Configuration: validated,
	})
	if err != nil {
		return Evaluation{}, err
	}

	plan, err := fabricplan.Plan(profile, settings, validated)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{
		Configuration: validated,
		Profile:       profile,
		Base:          base,
		Settings:      settings,
		FabricRates:   rates,
		Breakdown:     breakdown,
		FabricPlan:    plan,
	}, nil
}

func (u *QuoteUseCase) loadFabricRates(ctx context.Context, cfg entities.Configuration) (map[string]entities.FabricRate, error) {
	rates := make(map[string]entities.FabricRate, len(cfg.Fabric.Codes))
	for _, code := range cfg.Fabric.Codes {
		if code == "" {
			continue
		}
		if _, ok := rates[code]; ok {
			continue
		}
		r, err := u.fabricRepo.GetFabric(ctx, code)
		if err != nil {
			return nil, err
		}
		if r.Code != "" {
			rates[code] = r
		}
	}
	return rates, nil
}

// loadCommercialData fetches the base record and the category settings
// concurrently; the two reads are independent.
func (u *QuoteUseCase) loadCommercialData(ctx context.Context, category entities.ProductCategory, productID string) (entities.ProductBaseRecord, entities.CategorySettings, error) {
	var (
		wg          sync.WaitGroup
		base        entities.ProductBaseRecord
		settings    entities.CategorySettings
		baseErr     error
		settingsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		base, baseErr = u.catalogRepo.GetBaseRecord(ctx, category, productID)
	}()
	go func() {
		defer wg.Done()
		settings, settingsErr = u.catalogRepo.GetCategorySettings(ctx, category)
	}()
	wg.Wait()
	if baseErr != nil {
		return entities.ProductBaseRecord{}, entities.CategorySettings{}, baseErr
	}
	if settingsErr != nil {
		return entities.ProductBaseRecord{}, entities.CategorySettings{}, settingsErr
	}
	return base, settings, nil
}
