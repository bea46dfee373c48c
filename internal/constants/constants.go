package constants

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

// TokenKeyBytes is the number of random bytes behind a token key; the key
// itself is the hex encoding, twice as long.
const TokenKeyBytes = 20
