package models

import "time"

// CachedDocument представляет последний полный снимок документа
// для офлайн чтения. Создается и обновляется при загрузке или мутации,
// инвалидируется только явной очисткой кеша.
type CachedDocument struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   int64     `json:"version"`
}

// Clone создает копию снимка документа
func (d *CachedDocument) Clone() *CachedDocument {
	clone := *d
	return &clone
}
