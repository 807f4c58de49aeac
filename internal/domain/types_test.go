package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettlementContext(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SettlementContext
		wantErr  bool
	}{
		{
			name:     "order",
			input:    "order",
			expected: ContextOrder,
		},
		{
			name:     "mixed case with spaces",
			input:    "  Admin_Mint ",
			expected: ContextAdminMint,
		},
		{
			name:     "owner mint",
			input:    "owner_mint",
			expected: ContextOwnerMint,
		},
		{
			name:     "test mint",
			input:    "test_mint",
			expected: ContextTestMint,
		},
		{
			name:    "unknown",
			input:   "airdrop",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettlementContext(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsLedgerFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "disabled",
			err:      ErrLedgerDisabled,
			expected: true,
		},
		{
			name:     "wrapped unavailable",
			err:      fmt.Errorf("submit mint: %w", ErrLedgerUnavailable),
			expected: true,
		},
		{
			name:     "rejection",
			err:      fmt.Errorf("%w: %w", ErrLedgerRejected, ErrInsufficientSupply),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLedgerFailure(tt.err))
		})
	}
}
