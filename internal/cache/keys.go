package cache

const GlobalKeyPrefix = "paragraphbyte"

// StoragePrefix returns the namespace owned by one fiber.Storage user,
// e.g. "paragraphbyte:limiter:". Keys from different owners never collide.
func StoragePrefix(owner string) string {
	return GlobalKeyPrefix + ":" + owner + ":"
}
