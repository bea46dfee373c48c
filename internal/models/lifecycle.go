package models

// Lifecycle is the shared soft-delete state embedded in archivable records.
// A record moves active -> archived -> active any number of times; a hard
// delete removes the row entirely and is not represented here.
type Lifecycle struct {
	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`
}

// Archive marks the record as soft deleted. Safe to call repeatedly.
func (l *Lifecycle) Archive() {
	l.IsDeleted = true
}

// Restore clears the soft-delete flag. Safe to call repeatedly.
func (l *Lifecycle) Restore() {
	l.IsDeleted = false
}

// Archived reports whether the record is currently soft deleted.
func (l *Lifecycle) Archived() bool {
	return l.IsDeleted
}
