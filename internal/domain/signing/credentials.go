// Where: internal/domain/signing/credentials.go
// What: Release signing credential set and its property keys.
// Why: Carry keystore path, passwords, and alias without infrastructure dependencies.
package signing

// Property keys read from the signing properties source.
const (
	KeyStoreFile     = "storeFile"
	KeyStorePassword = "storePassword"
	KeyKeyAlias      = "keyAlias"
	KeyKeyPassword   = "keyPassword"
)

// Keys lists the four signing keys in their canonical order.
var Keys = []string{KeyStoreFile, KeyStorePassword, KeyKeyAlias, KeyKeyPassword}

// CredentialSet holds the values read from the properties source.
// A nil field means the key was absent; values are kept verbatim.
type CredentialSet struct {
	StoreFile     *string `json:"storeFile" yaml:"storeFile"`
	StorePassword *string `json:"storePassword" yaml:"storePassword"`
	KeyAlias      *string `json:"keyAlias" yaml:"keyAlias"`
	KeyPassword   *string `json:"keyPassword" yaml:"keyPassword"`
}

// Lookup returns the raw value stored under a key.
type Lookup func(key string) (string, bool)

// FromLookup builds a CredentialSet from a key lookup. Missing keys stay nil.
func FromLookup(lookup Lookup) CredentialSet {
	get := func(key string) *string {
		if lookup == nil {
			return nil
		}
		value, ok := lookup(key)
		if !ok {
			return nil
		}
		return &value
	}
	return CredentialSet{
		StoreFile:     get(KeyStoreFile),
		StorePassword: get(KeyStorePassword),
		KeyAlias:      get(KeyKeyAlias),
		KeyPassword:   get(KeyKeyPassword),
	}
}

// Field returns the value pointer associated with a property key.
func (c CredentialSet) Field(key string) *string {
	switch key {
	case KeyStoreFile:
		return c.StoreFile
	case KeyStorePassword:
		return c.StorePassword
	case KeyKeyAlias:
		return c.KeyAlias
	case KeyKeyPassword:
		return c.KeyPassword
	default:
		return nil
	}
}

// Missing returns the keys that are absent, in canonical order.
func (c CredentialSet) Missing() []string {
	var missing []string
	for _, key := range Keys {
		if c.Field(key) == nil {
			missing = append(missing, key)
		}
	}
	return missing
}

// Complete reports whether all four keys are present.
func (c CredentialSet) Complete() bool {
	return len(c.Missing()) == 0
}

// Redacted returns a copy safe for display: passwords are masked, absent fields stay nil.
func (c CredentialSet) Redacted() CredentialSet {
	out := c
	out.StorePassword = mask(c.StorePassword)
	out.KeyPassword = mask(c.KeyPassword)
	return out
}

const maskedValue = "********"

func mask(value *string) *string {
	if value == nil {
		return nil
	}
	masked := maskedValue
	return &masked
}

// Display formats an optional value for console output.
func Display(value *string) string {
	if value == nil {
		return "<unset>"
	}
	return *value
}
