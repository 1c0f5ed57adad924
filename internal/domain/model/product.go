package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderKid    Gender = "kid"
	GenderUnisex Gender = "unisex"
)

// 商品。画像(ProductImage)は商品が所有し、商品削除で一緒に消える。
type Product struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"type:text;not null;uniqueIndex" json:"title"`
	Price       float64        `gorm:"type:float;not null;default:0" json:"price"`
	Description *string        `gorm:"type:text" json:"description"`
	Slug        string         `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	Sizes       pq.StringArray `gorm:"type:text[];not null" json:"sizes"`
	Gender      Gender         `gorm:"type:text;not null" json:"gender"`
	Tags        pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}

// idが空ならUUIDを採番
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Tags == nil {
		p.Tags = pq.StringArray{}
	}
	return nil
}

// insert/updateの両方でslugを正規化する。slugが無ければtitleから作る。
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = p.Title
	}
	p.Slug = NormalizeSlug(p.Slug)
	return nil
}

// 小文字化して空白とハイフンを_へ、'は削除。
func NormalizeSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// 画像URLだけの配列
func (p Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

func IsValidGender(g string) bool {
	switch Gender(g) {
	case GenderMen, GenderWomen, GenderKid, GenderUnisex:
		return true
	}
	return false
}
