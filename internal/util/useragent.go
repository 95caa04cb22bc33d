package util

import (
	"strings"

	"github.com/mssola/useragent"
)

const unknownAgent = "Desconhecido"

// UserAgentInfo is the coarse device/browser split stored in access logs.
type UserAgentInfo struct {
	Device  string
	Browser string
}

// ParseUserAgent extracts a device family and browser family from a User-Agent header.
// Unknown agents map to "Desconhecido".
func ParseUserAgent(raw string) UserAgentInfo {
	if strings.TrimSpace(raw) == "" {
		return UserAgentInfo{Device: unknownAgent, Browser: unknownAgent}
	}
	ua := useragent.New(raw)

	info := UserAgentInfo{Device: "Desktop", Browser: unknownAgent}
	switch {
	case ua.Bot() || ua.Mozilla() == "":
		// crawlers and scripted clients such as curl never claim Mozilla
		info.Device = "Bot"
	case ua.Platform() == "iPad" || strings.Contains(strings.ToLower(raw), "tablet"):
		info.Device = "Tablet"
	case ua.Mobile():
		info.Device = "Mobile"
	}

	if name, _ := ua.Browser(); name != "" {
		info.Browser = name
	}
	return info
}
