package wallet

import (
	"time"

	"github.com/walletbox/walletbox/internal/accounts"
	"github.com/walletbox/walletbox/internal/activity"
	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
)

const (
	// DefaultAppName is written to the meta block of new wallets.
	DefaultAppName = "Wallet Sandbox"

	welcomeTitle   = "Welcome"
	welcomeDetails = "Welcome to your new mobile bank"
)

// SeedState builds the state of a brand new wallet: two accounts, one
// welcome note and default settings. Only ids and timestamps vary.
func SeedState(ids id.Generator, now func() time.Time, appName, currency string) *model.State {
	if now == nil {
		now = time.Now
	}
	if appName == "" {
		appName = DefaultAppName
	}
	st := &model.State{
		Meta:     model.Meta{App: appName, Demo: true, CreatedAt: now().UTC()},
		Accounts: accounts.DefaultAccounts(ids, currency),
		Activity: []model.ActivityEntry{},
		Settings: model.Settings{model.SettingHaptics: false},
	}
	activity.NewLedger(st, ids, now).Note(welcomeTitle, welcomeDetails)
	return st
}
