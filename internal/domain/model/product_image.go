package model

// 商品画像。ProductIDが所有者への参照。
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string `gorm:"column:url;type:text;not null" json:"url"`
	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`
}

// URLの配列から画像レコードを作る（IDは未採番）
func NewProductImages(urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for _, u := range urls {
		images = append(images, ProductImage{URL: u})
	}
	return images
}
