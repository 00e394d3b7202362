package providers

import (
	"eternalquest/internal/structures"
	"fmt"
	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	sections := []struct {
		name string
		data interface{}
	}{
		{"ledger", &cv.conf.Ledger},
		{"persistence", &cv.conf.Persistence},
		{"logger", &cv.conf.Logger},
	}
	for _, section := range sections {
		v := validate.Struct(section.data)
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %s", section.name, v.Errors.One())
		}
	}
	if cv.conf.Cache.Enabled && cv.conf.Cache.Size <= 0 {
		return fmt.Errorf("invalid cache config: size must be positive when enabled")
	}
	return nil
}
