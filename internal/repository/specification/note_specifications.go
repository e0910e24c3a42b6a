package specification

import "gorm.io/gorm"

// OwnedBy scopes a note query to a single owner. Every note read and write
// carries this, so a foreign note is indistinguishable from a missing one.
type OwnedBy struct {
	UserID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
