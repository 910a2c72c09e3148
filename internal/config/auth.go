package config

// JWTConfig holds token issuance settings. Access and refresh tokens are
// both HS256, signed with the same secret and distinguished by a type claim.
type JWTConfig struct {
	Secret     string   `yaml:"secret"`
	AccessTTL  Duration `yaml:"access_ttl"`
	RefreshTTL Duration `yaml:"refresh_ttl"`
}
