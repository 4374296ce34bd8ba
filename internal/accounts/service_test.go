package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newSeeded() (*Registry, *model.State) {
	ids := id.NewSequence("acc")
	st := &model.State{Accounts: DefaultAccounts(ids, "")}
	return NewRegistry(st, ids, ""), st
}

func TestDefaultAccounts(t *testing.T) {
	accts := DefaultAccounts(id.NewSequence("acc"), "")
	require.Len(t, accts, 2)

	assert.Equal(t, "acc-0001", accts[0].ID)
	assert.Equal(t, "Main wallet", accts[0].Name)
	assert.True(t, accts[0].Balance.Equal(dec("12500")))
	assert.True(t, accts[1].Balance.Equal(dec("50000")))
	for _, a := range accts {
		assert.Equal(t, DefaultCurrency, a.Currency)
	}

	usd := DefaultAccounts(id.NewSequence("acc"), "$")
	assert.Equal(t, "$", usd[0].Currency)
}

func TestCreate(t *testing.T) {
	reg, st := newSeeded()

	acct := reg.Create("Pocket money", "€", decimal.NewNullDecimal(dec("100.50")))
	assert.Equal(t, "acc-0003", acct.ID)
	assert.Equal(t, "Pocket money", acct.Name)
	assert.Equal(t, "€", acct.Currency)
	assert.True(t, acct.Balance.Equal(dec("100.50")))

	require.Len(t, st.Accounts, 3)
	assert.Equal(t, acct, st.Accounts[2], "new accounts go last")
}

func TestCreate_Defaults(t *testing.T) {
	reg, _ := newSeeded()

	acct := reg.Create("   ", "", decimal.NullDecimal{})
	assert.Equal(t, DefaultName, acct.Name)
	assert.Equal(t, DefaultCurrency, acct.Currency)
	assert.True(t, acct.Balance.IsZero())

	acct = reg.Create("  Trimmed ", " $ ", ParseAmount("abc"))
	assert.Equal(t, "Trimmed", acct.Name)
	assert.Equal(t, "$", acct.Currency)
	assert.True(t, acct.Balance.IsZero())
}

func TestUpdateBalance(t *testing.T) {
	reg, st := newSeeded()

	acct, ok := reg.UpdateBalance("acc-0001", decimal.NewNullDecimal(dec("-42")))
	require.True(t, ok)
	assert.True(t, acct.Balance.Equal(dec("-42")))
	assert.True(t, st.Accounts[0].Balance.Equal(dec("-42")))

	// Invalid values keep the prior balance.
	acct, ok = reg.UpdateBalance("acc-0001", ParseAmount("NaN"))
	require.True(t, ok)
	assert.True(t, acct.Balance.Equal(dec("-42")))

	_, ok = reg.UpdateBalance("missing", decimal.NewNullDecimal(dec("1")))
	assert.False(t, ok)
}

func TestAdjust(t *testing.T) {
	reg, _ := newSeeded()

	acct, ok := reg.Adjust("acc-0002", dec("-50001"))
	require.True(t, ok)
	assert.True(t, acct.Balance.Equal(dec("-1")), "no floor on balances")

	_, ok = reg.Adjust("missing", dec("1"))
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	reg, st := newSeeded()

	acct, ok := reg.Delete("acc-0001")
	require.True(t, ok)
	assert.Equal(t, "Main wallet", acct.Name)
	require.Len(t, st.Accounts, 1)
	assert.Equal(t, "acc-0002", st.Accounts[0].ID)

	_, ok = reg.Delete("acc-0001")
	assert.False(t, ok)
	assert.Len(t, st.Accounts, 1)
}

func TestDelete_DoesNotAliasClones(t *testing.T) {
	reg, st := newSeeded()
	before := st.Clone()
	shared := st.Accounts

	_, ok := reg.Delete("acc-0001")
	require.True(t, ok)
	assert.Equal(t, before.Accounts, shared, "original backing array is untouched")
}

func TestGetExists(t *testing.T) {
	reg, _ := newSeeded()

	acct, ok := reg.Get("acc-0002")
	assert.True(t, ok)
	assert.Equal(t, "Savings", acct.Name)

	_, ok = reg.Get("acc-9999")
	assert.False(t, ok)

	assert.True(t, reg.Exists("acc-0001"))
	assert.False(t, reg.Exists("acc-9999"))
	assert.Len(t, reg.All(), 2)
}

func TestResolve(t *testing.T) {
	ids := id.NewSequence("x")
	st := &model.State{Accounts: []model.Account{
		{ID: "9f3a0c-1", Name: "One"},
		{ID: "9f3b77-2", Name: "Two"},
	}}
	reg := NewRegistry(st, ids, "")

	acct, err := reg.Resolve("9f3a0c-1")
	require.NoError(t, err)
	assert.Equal(t, "One", acct.Name)

	acct, err = reg.Resolve("9f3b")
	require.NoError(t, err)
	assert.Equal(t, "Two", acct.Name)

	_, err = reg.Resolve("9f3")
	assert.ErrorIs(t, err, ErrAmbiguous)

	acct, err = reg.Resolve(" two ")
	require.NoError(t, err)
	assert.Equal(t, "9f3b77-2", acct.ID)

	reg.Create("one", "", decimal.NullDecimal{})
	_, err = reg.Resolve("ONE")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = reg.Resolve("zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = reg.Resolve("")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrimaryCurrency(t *testing.T) {
	st := &model.State{}
	reg := NewRegistry(st, id.NewSequence("acc"), "$")
	assert.Equal(t, "$", reg.PrimaryCurrency())

	reg.Create("Euro", "€", decimal.NullDecimal{})
	reg.Create("Dollar", "$", decimal.NullDecimal{})
	assert.Equal(t, "€", reg.PrimaryCurrency())
}

func TestTotal(t *testing.T) {
	reg, _ := newSeeded()
	assert.True(t, reg.Total().Equal(dec("62500")))

	reg.Create("Debt", "$", decimal.NewNullDecimal(dec("-500.25")))
	assert.True(t, reg.Total().Equal(dec("61999.75")), "currency tags are ignored")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		valid bool
	}{
		{"1500", "1500", true},
		{" 1500,50 ", "1500.5", true},
		{"-20.5", "-20.5", true},
		{"0", "0", true},
		{"1e3", "1000", true},
		{"", "", false},
		{"abc", "", false},
		{"NaN", "", false},
		{"Infinity", "", false},
		{"1,5,0", "", false},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.input)
		assert.Equal(t, tt.valid, got.Valid, "input %q", tt.input)
		if tt.valid {
			assert.True(t, got.Decimal.Equal(dec(tt.want)), "input %q: got %s", tt.input, got.Decimal)
		}
	}
}
