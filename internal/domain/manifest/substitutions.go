package manifest

import "sort"

// Template keys produced by Provider.
const (
	KeyVersion               = "version"
	KeyVersionShort          = "version_short"
	KeyVersionDashes         = "version_dashes"
	KeyChannel               = "channel"
	KeyChannelOneword        = "channel_oneword"
	KeyChannelUnique         = "channel_unique"
	KeySubchannelUnderscores = "subchannel_underscores"
	KeyAppName               = "app_name"
	KeyGrid                  = "grid"
	KeyGridCaps              = "grid_caps"
	KeyInstallerFile         = "installer_file"
)

// Substitutions maps template keys to their replacement values.
type Substitutions map[string]string

// Get returns the value for key and whether it was set.
func (s Substitutions) Get(key string) (string, bool) {
	value, ok := s[key]

	return value, ok
}

// Keys returns the keys in sorted order.
func (s Substitutions) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
