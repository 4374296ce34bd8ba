package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *State {
	amt := decimal.NewFromInt(1500)
	return &State{
		Meta: Meta{App: "Wallet Sandbox", Demo: true, CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		Accounts: []Account{
			{ID: "a1", Name: "Main wallet", Currency: "₽", Balance: decimal.NewFromInt(12500)},
			{ID: "a2", Name: "Savings", Currency: "₽", Balance: decimal.NewFromInt(50000)},
		},
		Activity: []ActivityEntry{
			{ID: "e2", Type: ActivityTransfer, Title: "Transfer", Amount: &amt, Currency: "₽"},
			{ID: "e1", Type: ActivityNote, Title: "Welcome"},
		},
		Settings: Settings{SettingHaptics: false},
	}
}

func TestClone_Independent(t *testing.T) {
	orig := sampleState()
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Accounts[0].Name = "changed"
	c.Activity = append(c.Activity, ActivityEntry{ID: "e3"})
	c.Settings[SettingHaptics] = true
	*c.Activity[0].Amount = decimal.NewFromInt(1)

	assert.Equal(t, "Main wallet", orig.Accounts[0].Name)
	assert.Len(t, orig.Activity, 2)
	assert.False(t, orig.Settings.Bool(SettingHaptics))
	assert.Equal(t, "1500", orig.Activity[0].Amount.String())
}

func TestClone_Nil(t *testing.T) {
	var s *State
	assert.Nil(t, s.Clone())
}

func TestAccountIndex(t *testing.T) {
	s := sampleState()
	assert.Equal(t, 0, s.AccountIndex("a1"))
	assert.Equal(t, 1, s.AccountIndex("a2"))
	assert.Equal(t, -1, s.AccountIndex("missing"))
}

func TestJSONShape(t *testing.T) {
	data, err := json.Marshal(sampleState())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"balance":12500`)
	assert.Contains(t, out, `"amount":1500`)
	assert.Contains(t, out, `"createdAt":"2025-01-02T03:04:05Z"`)
	assert.Contains(t, out, `"haptics":false`)
	// Notes carry neither amount nor currency.
	assert.Contains(t, out, `{"id":"e1","ts":"0001-01-01T00:00:00Z","type":"note","title":"Welcome","details":""}`)
}

func TestActivityTypeValid(t *testing.T) {
	for _, typ := range []ActivityType{ActivityNote, ActivityIncome, ActivityExpense, ActivityTransfer} {
		assert.True(t, typ.Valid(), "%s", typ)
	}
	assert.False(t, ActivityType("refund").Valid())
	assert.False(t, ActivityType("").Valid())
}

func TestSettingsBool(t *testing.T) {
	s := Settings{"haptics": true, "theme": "dark"}
	assert.True(t, s.Bool("haptics"))
	assert.False(t, s.Bool("theme"))
	assert.False(t, s.Bool("missing"))
}

func TestClone_CopiesKeptFields(t *testing.T) {
	var orig State
	require.NoError(t, json.Unmarshal([]byte(`{"accounts":[{"id":"a","balance":"x"}],"activity":[{"id":"e","pinned":1}],"theme":"dark"}`), &orig))

	c := orig.Clone()
	c.Accounts[0].SetBalance(decimal.NewFromInt(1))
	c.Activity[0].Extra["pinned"] = json.RawMessage("2")
	delete(c.Extra, "theme")

	assert.Contains(t, orig.Accounts[0].Extra, "balance")
	assert.Equal(t, "1", string(orig.Activity[0].Extra["pinned"]))
	assert.Contains(t, orig.Extra, "theme")
}

func TestAccountIndex_BlankID(t *testing.T) {
	s := &State{Accounts: []Account{{Opaque: json.RawMessage("null")}}}
	assert.Equal(t, -1, s.AccountIndex(""))
}

func TestSetFlag(t *testing.T) {
	var s State
	require.NoError(t, json.Unmarshal([]byte(`{"settings":"off"}`), &s))
	require.Contains(t, s.Extra, "settings")

	s.SetFlag(SettingHaptics, true)
	assert.True(t, s.Settings.Bool(SettingHaptics))
	assert.NotContains(t, s.Extra, "settings")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"settings":{"haptics":true}`)
}

func TestUnmarshal_NotAnObject(t *testing.T) {
	var s State
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &s))
}
