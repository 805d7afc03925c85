// Copyright (c) 2026 Grupo LoBueno SAS <digital@grupolobueno.com>
// All rights reserved. See LICENSE for details.

package models

// Platform is an output channel with its own literal formatting template.
// The string values are the canonical labels used across the API, the
// database, and the generation prompt.
type Platform string

const (
	PlatformPush      Platform = "Push Notification"
	PlatformWhatsApp  Platform = "WhatsApp"
	PlatformInstagram Platform = "Instagram Post"
	PlatformGoogleAds Platform = "Google Ads"
	PlatformEmail     Platform = "Email"
	PlatformPopup     Platform = "Pop up"
)

// Platforms lists every supported channel in presentation order.
var Platforms = []Platform{
	PlatformPush,
	PlatformWhatsApp,
	PlatformInstagram,
	PlatformGoogleAds,
	PlatformEmail,
	PlatformPopup,
}

// Valid reports whether p is one of the supported channels.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}
