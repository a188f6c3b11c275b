package redis

const (
	// KeyPrefixBusiness is the prefix for business records
	KeyPrefixBusiness = "tapbook:business:"
	// KeyAllBusinesses is the set of every stored slug
	KeyAllBusinesses = "tapbook:businesses:all"
)

// BusinessKey returns the Redis key for a business by slug
func BusinessKey(slug string) string {
	return KeyPrefixBusiness + slug
}
