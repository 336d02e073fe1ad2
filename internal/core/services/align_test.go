package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/helix/internal/core/domain"
)

func TestAlignService_Global(t *testing.T) {
	service := NewAlignService()

	aln, err := service.Global(context.Background(), "GATTACA", "GCATGCU")
	require.NoError(t, err)
	assert.Equal(t, "G-ATTACA", aln.AlignedA)
	assert.Equal(t, "GCA-TGCU", aln.AlignedB)
	assert.InDelta(t, 4.0, aln.Score, 1e-9)
	assert.Equal(t, domain.AlignGlobal, aln.Mode)

	assert.Equal(t, "G-ATTACA\n| | | | \nGCA-TGCU\n  Score=4\n", service.Render(aln))
}

func TestAlignService_Local(t *testing.T) {
	service := NewAlignService()

	aln, err := service.Local(context.Background(), "GATTACA", "GCATGCU")
	require.NoError(t, err)
	require.NotNil(t, aln)
	assert.Equal(t, "AT", aln.AlignedA)
	assert.Equal(t, "AT", aln.AlignedB)
	assert.InDelta(t, 4.0, aln.Score, 1e-9)
	assert.Equal(t, "AT\n||\nAT\n  Score=4\n", service.Render(*aln))
}

func TestAlignService_Local_NoAlignment(t *testing.T) {
	service := NewAlignService()

	aln, err := service.Local(context.Background(), "AAAA", "CCCC")
	require.NoError(t, err)
	assert.Nil(t, aln)
}

func TestAlignService_EmptyInput(t *testing.T) {
	service := NewAlignService()
	ctx := context.Background()

	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"empty first", "", "ACGT", "seq1"},
		{"blank first", "  ", "ACGT", "seq1"},
		{"empty second", "ACGT", "", "seq2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Global(ctx, tt.a, tt.b)
			require.ErrorIs(t, err, domain.ErrEmptyInput)
			assert.Contains(t, err.Error(), tt.want)

			_, err = service.Local(ctx, tt.a, tt.b)
			require.ErrorIs(t, err, domain.ErrEmptyInput)
		})
	}
}

func TestAlignService_Cancelled(t *testing.T) {
	service := NewAlignService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Global(ctx, "ACGT", "ACGT")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = service.Local(ctx, "ACGT", "ACGT")
	assert.ErrorIs(t, err, context.Canceled)
}
