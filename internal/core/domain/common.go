package domain

import "time"

// Base holds the identity and audit information shared by every entity.
// Nullable columns are pointers; a nil value is stored as SQL NULL.
type Base struct {
	ID         int64      `json:"id"`
	CreateTime time.Time  `json:"createTime"`
	UpdateTime *time.Time `json:"updateTime,omitempty"`
	DeleteTime *time.Time `json:"deleteTime,omitempty"`
	CreatedBy  *string    `json:"createdBy,omitempty"`
	UpdatedBy  *string    `json:"updatedBy,omitempty"`
	DeletedBy  *string    `json:"deletedBy,omitempty"`
}

// IsDeleted reports whether the row is soft-deleted.
func (b Base) IsDeleted() bool {
	return b.DeleteTime != nil
}

// StampCreate sets the creation stamps.
func (b *Base) StampCreate(user string, now time.Time) {
	b.CreateTime = now.Truncate(time.Millisecond)
	b.CreatedBy = Ptr(user)
}

// StampUpdate sets the mutation stamps.
func (b *Base) StampUpdate(user string, now time.Time) {
	b.UpdateTime = Ptr(now.Truncate(time.Millisecond))
	b.UpdatedBy = Ptr(user)
}

// StampDelete marks the row soft-deleted.
func (b *Base) StampDelete(user string, now time.Time) {
	b.DeleteTime = Ptr(now.Truncate(time.Millisecond))
	b.DeletedBy = Ptr(user)
}

// Restore clears the soft-delete stamps and records the mutation.
func (b *Base) Restore(user string, now time.Time) {
	b.DeleteTime = nil
	b.DeletedBy = nil
	b.StampUpdate(user, now)
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
