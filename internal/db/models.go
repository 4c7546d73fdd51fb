package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
}

type Customer struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Phone  string
	Email  string
}

type Notebook struct {
	ID                uuid.UUID
	CategoryID        uuid.UUID
	Title             string
	Slug              string
	Image             string
	Description       *string
	PriceAmount       decimal.Decimal
	PriceCurrency     string
	Diagonal          string
	DisplayType       string
	ProcessorFreq     string
	Ram               string
	Video             string
	TimeWithoutCharge string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Smartphone struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	Title         string
	Slug          string
	Image         string
	Description   *string
	PriceAmount   decimal.Decimal
	PriceCurrency string
	Diagonal      string
	DisplayType   string
	Resolution    string
	AccumVolume   string
	Ram           string
	Sd            bool
	SdVolumeMax   *string
	MainCamMp     string
	FrontalCamMp  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Cart struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	TotalProducts    int32
	FinalAmount      decimal.Decimal
	FinalCurrency    string
	InOrder          bool
	ForAnonymousUser bool
}

type CartProduct struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	CartID        uuid.UUID
	ContentType   string
	ObjectID      uuid.UUID
	Qty           int32
	FinalAmount   decimal.Decimal
	FinalCurrency string
	CreatedAt     time.Time
}
