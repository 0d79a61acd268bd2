package utils

import (
	"ClinicDesk/cache"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const resetCodeExpiry = 15 * time.Minute

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SetResetCode stores the reset code for the email with a 15 minute TTL.
func SetResetCode(ctx context.Context, c *cache.Cache, email, code string) error {
	return c.Set(ctx, "reset_code:"+email, code, resetCodeExpiry)
}

// GetResetCode retrieves the reset code for the email, or "" when none is
// pending.
func GetResetCode(ctx context.Context, c *cache.Cache, email string) (string, error) {
	return c.Get(ctx, "reset_code:"+email)
}

// DeleteResetCode removes a consumed reset code.
func DeleteResetCode(ctx context.Context, c *cache.Cache, email string) error {
	return c.Delete(ctx, "reset_code:"+email)
}
