package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UpdateType tells the driver app how to treat a newer release.
type UpdateType string

const (
	UpdateTypeOptional UpdateType = "optional"
	UpdateTypeForce    UpdateType = "force"
)

var (
	ErrInvalidVersionInfo = errors.New("invalid version info")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// VersionInfo is the payload the driver app polls to decide whether to prompt for an update.
type VersionInfo struct {
	LatestVersion string     `json:"latest_version" validate:"required"`
	UpdateType    UpdateType `json:"update_type" validate:"required,oneof=optional force"`
	AppStoreLink  string     `json:"app_store_link" validate:"required,url"`
}

// NewVersionInfo creates a VersionInfo and validates it.
func NewVersionInfo(latestVersion string, updateType UpdateType, appStoreLink string) (*VersionInfo, error) {
	info := &VersionInfo{
		LatestVersion: latestVersion,
		UpdateType:    updateType,
		AppStoreLink:  appStoreLink,
	}

	if err := validate.Struct(info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVersionInfo, err)
	}

	return info, nil
}
