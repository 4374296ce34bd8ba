package document

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletbox/walletbox/internal/model"
)

func testState() *model.State {
	amt := decimal.RequireFromString("1500.5")
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return &model.State{
		Meta: model.Meta{App: "Wallet Sandbox", Demo: true, CreatedAt: ts},
		Accounts: []model.Account{
			{ID: "a1", Name: "Main wallet", Currency: "₽", Balance: decimal.NewFromInt(12500)},
			{ID: "a2", Name: "Savings & <stuff>", Currency: "$", Balance: decimal.RequireFromString("-3.25")},
		},
		Activity: []model.ActivityEntry{
			{ID: "e2", TS: ts, Type: model.ActivityTransfer, Title: "Transfer", Details: "Main wallet → Savings", Amount: &amt, Currency: "₽"},
			{ID: "e1", TS: ts, Type: model.ActivityNote, Title: "Welcome"},
		},
		Settings: model.Settings{"haptics": false},
	}
}

func TestEncodeDecode(t *testing.T) {
	data, err := Encode(testState())
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)

	// Re-encoding is byte-for-byte stable.
	again, err := Encode(got)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))

	require.Len(t, got.Accounts, 2)
	assert.True(t, got.Accounts[1].Balance.Equal(decimal.RequireFromString("-3.25")))
	require.Len(t, got.Activity, 2)
	assert.Equal(t, "1500.5", got.Activity[0].Amount.String())
	assert.Nil(t, got.Activity[1].Amount)
	assert.Equal(t, false, got.Settings["haptics"])
}

func TestEncode_Format(t *testing.T) {
	data, err := Encode(testState())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "{\n  \"meta\": {\n    \"app\": \"Wallet Sandbox\""))
	assert.Contains(t, out, `"balance": 12500`)
	assert.Contains(t, out, `"balance": -3.25`)
	assert.Contains(t, out, `"Savings & <stuff>"`, "HTML characters are not escaped")
	assert.Contains(t, out, `"createdAt": "2025-01-15T10:30:00Z"`)
}

func TestEncode_EmptyLists(t *testing.T) {
	data, err := Encode(&model.State{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"accounts": []`)
	assert.Contains(t, string(data), `"activity": []`)
	assert.Contains(t, string(data), `"settings": {}`)

	_, err = Decode(data)
	assert.NoError(t, err)

	_, err = Encode(nil)
	assert.Error(t, err)
}

func TestDecode_BrowserDocument(t *testing.T) {
	// Written by the browser sandbox: millisecond timestamps, compact JSON.
	doc := `{"meta":{"app":"Т-банк","demo":true,"createdAt":"2025-01-15T10:30:00.000Z"},` +
		`"accounts":[{"id":"9f3a0c1b2d4e5-18c2b3a4f10","name":"Основной кошелёк","currency":"₽","balance":12500}],` +
		`"activity":[{"id":"x-1","ts":"2025-01-15T10:30:00.000Z","type":"note","title":"Добро пожаловать","details":""}],` +
		`"settings":{"haptics":false,"theme":"dark"}}`

	st, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Т-банк", st.Meta.App)
	assert.Equal(t, 2025, st.Meta.CreatedAt.Year())
	assert.Equal(t, "12500", st.Accounts[0].Balance.String())
	assert.Equal(t, model.ActivityNote, st.Activity[0].Type)
	assert.Equal(t, "dark", st.Settings["theme"])
}

func TestDecode_PassesEntriesThrough(t *testing.T) {
	// Unknown types and missing fields are not corrected.
	doc := `{"accounts":[{"id":"a"}],"activity":[{"type":"refund"}]}`
	st, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "", st.Accounts[0].Name)
	assert.True(t, st.Accounts[0].Balance.IsZero())
	assert.Equal(t, model.ActivityType("refund"), st.Activity[0].Type)
}

func TestDecode_KeepsUnreadableValues(t *testing.T) {
	doc := `{"meta":{"app":"Sandbox","demo":true,"createdAt":"2025-01-15T10:30:00Z","build":7},` +
		`"accounts":[{"id":"a","name":"Main & <co>","currency":"₽","balance":"lots","color":"teal"},null,42],` +
		`"activity":[{"id":"x","ts":"yesterday","type":"note","title":"Hi","details":"","amount":null,"pinned":true}],` +
		`"settings":{"haptics":true},"profile":{"name":"Ann"},"version":3}`

	st, err := Decode([]byte(doc))
	require.NoError(t, err)

	require.Len(t, st.Accounts, 3)
	assert.Equal(t, "a", st.Accounts[0].ID)
	assert.True(t, st.Accounts[0].Balance.IsZero())
	assert.JSONEq(t, `"lots"`, string(st.Accounts[0].Extra["balance"]))
	assert.Equal(t, "null", string(st.Accounts[1].Opaque))
	assert.True(t, st.Activity[0].TS.IsZero())
	assert.Nil(t, st.Activity[0].Amount)
	assert.JSONEq(t, `{"name":"Ann"}`, string(st.Extra["profile"]))

	out, err := Encode(st)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
	assert.Contains(t, string(out), `"Main & <co>"`)

	// Setting a balance replaces the kept raw value.
	st.Accounts[0].SetBalance(decimal.NewFromInt(5))
	out, err = Encode(st)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"balance": 5`)
	assert.NotContains(t, string(out), `"lots"`)
}

func TestDecode_WrongTypedSections(t *testing.T) {
	doc := `{"meta":"v1","accounts":[],"activity":[],"settings":[1,2]}`
	st, err := Decode([]byte(doc))
	require.NoError(t, err)
	assert.Nil(t, st.Settings)

	out, err := Encode(st)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"garbage", "not json at all"},
		{"truncated", `{"accounts":[`},
		{"null", "null"},
		{"array", "[]"},
		{"string", `"wallet"`},
		{"missing accounts", `{"activity":[]}`},
		{"missing activity", `{"accounts":[]}`},
		{"accounts object", `{"accounts":{},"activity":[]}`},
		{"activity null", `{"accounts":[],"activity":null}`},
		{"activity string", `{"accounts":[],"activity":"[]"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestReadPortable_Plain(t *testing.T) {
	got, err := ReadPortable(strings.NewReader(`{"accounts":[],"activity":[]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[],"activity":[]}`, string(got))
}

func TestReadPortable_Gzip(t *testing.T) {
	data, err := Encode(testState())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGzip(&buf, data))
	assert.NotEqual(t, data, buf.Bytes())

	got, err := ReadPortable(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadPortable_Empty(t *testing.T) {
	got, err := ReadPortable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
