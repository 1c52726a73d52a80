package sessionid

import (
	"sort"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := NewGenerator(nil, nil).Generate()
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	g := NewGenerator(nil, nil)
	ids := make(map[string]bool)
	for range 1000 {
		id := g.Generate()
		require.False(t, ids[id], "duplicate ID %s", id)
		ids[id] = true
	}
}

func TestGenerateIsRepeatable(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	generate := func() string {
		mock := quartz.NewMock(t)
		mock.Set(at)
		return NewGenerator(mock, randutil.New(42)).Generate()
	}
	assert.Equal(t, generate(), generate())
}

func TestGenerateSortsByTime(t *testing.T) {
	t.Parallel()

	mock := quartz.NewMock(t)
	mock.Set(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g := NewGenerator(mock, randutil.New(7))

	var ids []string
	for range 20 {
		ids = append(ids, g.Generate())
		mock.Advance(time.Millisecond)
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 30, 0, 123_000_000, time.UTC)
	mock := quartz.NewMock(t)
	mock.Set(at)

	id := NewGenerator(mock, randutil.New(1)).Generate()
	got, err := Time(id)
	require.NoError(t, err)
	assert.True(t, at.Equal(got), "got %s", got)

	_, err = Time("short")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid", "01jnx3k8h4m2p6q9r0s5t7v8wz", true},
		{"too short", "01jnx3k8h4", false},
		{"too long", "01jnx3k8h4m2p6q9r0s5t7v8wzz", false},
		{"first character above 7", "81jnx3k8h4m2p6q9r0s5t7v8wz", false},
		{"excluded letter", "01jnx3k8h4m2p6q9r0s5t7v8wu", false},
		{"upper case", "01JNX3K8H4M2P6Q9R0S5T7V8WZ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.id)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
