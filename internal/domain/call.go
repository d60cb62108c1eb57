package domain

import "errors"

const DefaultPresetName = "group_call_host"

var ErrCallConfigIncomplete = errors.New("call config incomplete")

// CallConfig holds the hosted meeting backend credentials.
// A nil *CallConfig means calls are disabled.
type CallConfig struct {
	AccountID  string
	APIToken   string
	AppID      string
	PresetName string
}

// NewCallConfig returns nil, ErrCallConfigIncomplete when any backend
// credential is missing.
func NewCallConfig(accountID, apiToken, appID, presetName string) (*CallConfig, error) {
	if accountID == "" || apiToken == "" || appID == "" {
		return nil, ErrCallConfigIncomplete
	}
	if presetName == "" {
		presetName = DefaultPresetName
	}
	return &CallConfig{
		AccountID:  accountID,
		APIToken:   apiToken,
		AppID:      appID,
		PresetName: presetName,
	}, nil
}

// Credential is a backend-issued participant token. Opaque to us.
type Credential string
