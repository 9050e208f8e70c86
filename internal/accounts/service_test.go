package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/model"
)

func TestLoad_MissingFile(t *testing.T) {
	svc, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, svc.All())
	assert.Equal(t, 1, svc.NextID())
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()

	svc := NewService(nil)
	svc.Add(model.Account{ID: 1, Name: "Chase Checking", Kind: model.AccountKindChecking})
	svc.Add(model.Account{ID: 2, Name: "Visa", Kind: model.AccountKindCredit})
	require.NoError(t, svc.Save(root))

	got, err := Load(root)
	require.NoError(t, err)
	require.Len(t, got.All(), 2)

	acct, ok := got.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Visa", acct.Name)
	assert.Equal(t, model.AccountKindCredit, acct.Kind)
	assert.True(t, got.Exists(1))
	assert.False(t, got.Exists(99))
}

func TestNextID(t *testing.T) {
	svc := NewService([]model.Account{
		{ID: 3, Name: "A", Kind: model.AccountKindOther},
		{ID: 7, Name: "B", Kind: model.AccountKindOther},
	})
	assert.Equal(t, 8, svc.NextID())
}
