package cartstore

import (
	"atelie-store/internal/model"
)

// Partition keys for the two logical cart namespaces.
const (
	GuestPartition     = "cart_guest"
	userPartitionsStem = "cart_user_"
)

// PartitionFor derives the storage partition for a session user. A nil user
// maps to the shared guest partition.
func PartitionFor(user *model.User) string {
	if user == nil || user.ID == "" {
		return GuestPartition
	}
	return UserPartition(user.ID)
}

// UserPartition returns the partition key for an authenticated user.
func UserPartition(userID string) string {
	return userPartitionsStem + userID
}

// Store maps a storage partition key to an ordered list of cart items.
//
// Read fails soft: a missing partition or malformed stored content yields an
// empty list, never an error. Write replaces the stored list in a single
// operation; readers never observe a partial write. Switching partitions
// never auto-merges — merging is an explicit cart operation.
type Store interface {
	Read(partition string) []model.CartItem
	Write(partition string, items []model.CartItem) error
	Delete(partition string) error
}
