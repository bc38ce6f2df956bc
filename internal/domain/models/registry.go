package models

// DefaultPrice is the unit price used for entities without a known price.
const DefaultPrice int64 = 50_000

// Entity is one tracked company.
type Entity struct {
	StockCode string `yaml:"stock_code" validate:"required,len=6,numeric"`
	Name      string `yaml:"name" validate:"required"`
	Sector    string `yaml:"sector" validate:"required"`
	Price     int64  `yaml:"price" validate:"gte=0"`
}

// Registry is the ordered list of tracked entities and their price table.
type Registry struct {
	DefaultPrice int64    `yaml:"default_price" default:"50000" validate:"gt=0"`
	Entities     []Entity `yaml:"entities" validate:"required,min=1,dive"`
}

// PriceOf returns the entity's configured price, or the registry fallback.
func (r *Registry) PriceOf(stockCode string) int64 {
	for _, e := range r.Entities {
		if e.StockCode == stockCode && e.Price > 0 {
			return e.Price
		}
	}
	if r.DefaultPrice > 0 {
		return r.DefaultPrice
	}
	return DefaultPrice
}
