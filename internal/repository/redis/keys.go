package redis

const (
	KeyPendingWager = "pending:wager:%s"
	// KeyPendingIndex is a sorted set of request ids scored by creation time (unix ms).
	KeyPendingIndex = "pending:wagers"
)
