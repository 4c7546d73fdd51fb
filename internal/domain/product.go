package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProductKind discriminates the concrete product tables.
type ProductKind string

const (
	KindNotebook   ProductKind = "notebook"
	KindSmartphone ProductKind = "smartphone"
)

// ProductKinds lists every known kind in declaration order.
var ProductKinds = []ProductKind{KindNotebook, KindSmartphone}

func ParseProductKind(s string) (ProductKind, error) {
	switch k := ProductKind(s); k {
	case KindNotebook, KindSmartphone:
		return k, nil
	default:
		return "", fmt.Errorf("unknown product kind[%s]", s)
	}
}

func (k ProductKind) String() string {
	return string(k)
}

// Product is implemented by every concrete product type.
type Product interface {
	Kind() ProductKind
	Base() *ProductBase
}

// ProductBase holds the columns shared by all product tables.
type ProductBase struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Title       string
	Slug        string
	Image       string
	Description *string
	Price       Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *ProductBase) Base() *ProductBase {
	return b
}

func (b *ProductBase) String() string {
	return b.Title
}

type Notebook struct {
	ProductBase

	Diagonal          string
	DisplayType       string
	ProcessorFreq     string
	RAM               string
	Video             string
	TimeWithoutCharge string
}

func (*Notebook) Kind() ProductKind {
	return KindNotebook
}

type Smartphone struct {
	ProductBase

	Diagonal     string
	DisplayType  string
	Resolution   string
	AccumVolume  string
	RAM          string
	SD           bool
	SDVolumeMax  *string
	MainCamMP    string
	FrontalCamMP string
}

func (*Smartphone) Kind() ProductKind {
	return KindSmartphone
}

// NewSmartphone returns a smartphone with the column defaults applied.
func NewSmartphone() *Smartphone {
	return &Smartphone{SD: true}
}

// ProductRef points at a record of any product kind.
type ProductRef struct {
	Kind ProductKind
	ID   uuid.UUID
}

func RefOf(p Product) ProductRef {
	return ProductRef{Kind: p.Kind(), ID: p.Base().ID}
}

// DisplayName renders a product the way listings show it: "<category>: <title>".
func DisplayName(category Category, p Product) string {
	return fmt.Sprintf("%s: %s", category.Name, p.Base().Title)
}
