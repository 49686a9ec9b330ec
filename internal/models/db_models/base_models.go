package db_models

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel rows are hard-deleted; timestamps are unix milliseconds.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64     `gorm:"autoCreateTime:milli;index" json:"createdAt"`
	UpdatedAt int64     `gorm:"autoUpdateTime:milli" json:"updatedAt"`
}

// lastCreatedAt is the highest creation stamp handed out by this process.
var lastCreatedAt atomic.Int64

// stampCreatedAt returns a creation time strictly after every earlier one, so
// rows inserted within the same millisecond still sort in insertion order.
// An explicit stamp is kept as is and only moves the clock forward.
func stampCreatedAt(explicit int64) int64 {
	for {
		last := lastCreatedAt.Load()
		next := explicit
		if next == 0 {
			next = time.Now().UnixMilli()
			if next <= last {
				next = last + 1
			}
		}
		if next <= last || lastCreatedAt.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = stampCreatedAt(b.CreatedAt)
	b.UpdatedAt = time.Now().UnixMilli()
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UnixMilli()
	return nil
}
