package markup

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/tendermarkup/internal/pkg/constants"
	"github.com/ougirez/tendermarkup/internal/pkg/store"
)

// Options настраивают пересчёт коэффициентов.
type Options struct {
	Concurrency   int
	MaxRetries    uint64
	RetryInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = constants.DefaultBackfillConcurrency
	}
	if o.MaxRetries == 0 {
		o.MaxRetries = constants.DefaultBackfillMaxRetries
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = constants.DefaultBackfillRetryInterval
	}
	return o
}

type Service struct {
	store    store.Store
	validate *validator.Validate
	opts     Options
	now      func() time.Time
}

func NewMarkupService(store store.Store, opts Options) *Service {
	return &Service{
		store:    store,
		validate: newValidator(),
		opts:     opts.withDefaults(),
		now:      time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// NaN и ±Inf не должны попадать в базу
	err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	if err != nil {
		panic(fmt.Sprintf("register finite validation: %s", err.Error()))
	}
	return v
}
