package kitchen

import (
	"fmt"

	"foodie/pkg/logger"
)

// Factory makes a consistent family of dishes: every dish from one factory
// shares its regional style.
type Factory interface {
	CreatePizza() *Pizza
	CreateEmpanada() *Empanada
}

type regionalFactory struct {
	style string
	log   *logger.Logger
}

func (f regionalFactory) CreatePizza() *Pizza {
	return &Pizza{Style: f.style, log: f.log}
}

func (f regionalFactory) CreateEmpanada() *Empanada {
	return &Empanada{Style: f.style, log: f.log}
}

const (
	RegionArgentinian = "argentinian"
	RegionJapanese    = "japanese"
)

func ArgentinianFactory(log *logger.Logger) Factory {
	return regionalFactory{style: RegionArgentinian, log: log}
}

func JapaneseFactory(log *logger.Logger) Factory {
	return regionalFactory{style: RegionJapanese, log: log}
}

// FactoryFor picks the factory for a region name.
func FactoryFor(region string, log *logger.Logger) (Factory, error) {
	switch region {
	case RegionArgentinian:
		return ArgentinianFactory(log), nil
	case RegionJapanese:
		return JapaneseFactory(log), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
}
