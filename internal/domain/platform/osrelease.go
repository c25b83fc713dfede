package platform

import (
	"strings"

	"gopkg.in/ini.v1"
)

// OSRelease holds the os-release keys BigHelp displays.
type OSRelease struct {
	Name       string
	PrettyName string
	ID         string
	VersionID  string
}

// ParseOSRelease reads KEY=value metadata in os-release(5) format.
// Malformed input yields an empty OSRelease.
func ParseOSRelease(data []byte) OSRelease {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:       true,
		SkipUnrecognizableLines:   true,
		UnescapeValueDoubleQuotes: true,
	}, data)
	if err != nil {
		return OSRelease{}
	}

	sec := f.Section(ini.DefaultSection)
	value := func(key string) string {
		return strings.Trim(strings.TrimSpace(sec.Key(key).String()), `"'`)
	}
	return OSRelease{
		Name:       value("NAME"),
		PrettyName: value("PRETTY_NAME"),
		ID:         value("ID"),
		VersionID:  value("VERSION_ID"),
	}
}
