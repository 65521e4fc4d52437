package handlers

import (
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// isoDay accepts calendar days in YYYY-MM-DD form.
func isoDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DayLayout, fl.Field().String())
	return err == nil
}

// registerValidators adds the custom binding rules to gin's validator.
func registerValidators() error {
	var err error
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("isoday", isoDay)
	})
	return err
}
