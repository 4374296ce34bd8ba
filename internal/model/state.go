package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Balances and amounts are plain JSON numbers in the document.
	decimal.MarshalJSONWithoutQuotes = true
}

// SettingHaptics is the only setting the sandbox knows about.
const SettingHaptics = "haptics"

// Meta describes the document. It does not change after creation.
type Meta struct {
	App       string    `json:"app"`
	Demo      bool      `json:"demo"`
	CreatedAt time.Time `json:"createdAt"`

	Extra Fields `json:"-"`
}

// Settings holds named flags. Unknown keys are kept as-is.
type Settings map[string]any

// Bool returns the flag value, or false when unset or not a bool.
func (s Settings) Bool(name string) bool {
	v, _ := s[name].(bool)
	return v
}

// State is the whole wallet: the document that gets persisted and exported.
//
// Activity is ordered newest first. Decoding is lenient: members the model
// cannot read are kept in Extra (or on the entry itself) and written back.
type State struct {
	Meta     Meta            `json:"meta"`
	Accounts []Account       `json:"accounts"`
	Activity []ActivityEntry `json:"activity"`
	Settings Settings        `json:"settings"`

	Extra Fields `json:"-"`
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := &State{Meta: s.Meta, Extra: s.Extra.clone()}
	c.Meta.Extra = s.Meta.Extra.clone()

	if s.Accounts != nil {
		c.Accounts = make([]Account, len(s.Accounts))
		for i, a := range s.Accounts {
			a.Extra = a.Extra.clone()
			c.Accounts[i] = a
		}
	}

	if s.Activity != nil {
		c.Activity = make([]ActivityEntry, len(s.Activity))
		for i, e := range s.Activity {
			if e.Amount != nil {
				amt := *e.Amount
				e.Amount = &amt
			}
			e.Extra = e.Extra.clone()
			c.Activity[i] = e
		}
	}

	if s.Settings != nil {
		c.Settings = make(Settings, len(s.Settings))
		for k, v := range s.Settings {
			c.Settings[k] = v
		}
	}
	return c
}

// AccountIndex returns the position of the account with the given ID, or -1.
// Accounts without an ID are never found.
func (s *State) AccountIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, a := range s.Accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// SetFlag sets a setting, replacing a settings value that was not an object.
func (s *State) SetFlag(name string, value bool) {
	if s.Settings == nil {
		s.Settings = make(Settings)
		delete(s.Extra, "settings")
	}
	s.Settings[name] = value
}
