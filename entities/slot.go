package entities

// StorageSlot is a single named key holding the whole serialized record
// collection; it is read once at startup and overwritten wholesale on every
// mutation.
type StorageSlot struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
