package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"atproto": map[string]any{
			"defaultPds":   "",
			"plcDirectory": "",
			"stateTtl":     "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ATPROTO_DEFAULTPDS", want: "atproto.defaultPds"},
		{envKey: "ATPROTO_PLCDIRECTORY", want: "atproto.plcDirectory"},
		{envKey: "ATPROTO_STATETTL", want: "atproto.stateTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAtprotoDefaults_FillsNetworkDefaults(t *testing.T) {
	cfg := &Config{}

	applyAtprotoDefaults(cfg)

	if cfg.Atproto == nil {
		t.Fatal("applyAtprotoDefaults left Atproto nil")
	}
	if cfg.Atproto.DefaultPDS != "https://bsky.social" {
		t.Errorf("DefaultPDS = %q, want default network URL", cfg.Atproto.DefaultPDS)
	}
	if cfg.Atproto.HandleSuffix != ".bsky.social" {
		t.Errorf("HandleSuffix = %q, want default network suffix", cfg.Atproto.HandleSuffix)
	}
	if cfg.Atproto.PLCDirectory != "https://plc.directory" {
		t.Errorf("PLCDirectory = %q, want public directory URL", cfg.Atproto.PLCDirectory)
	}
	if cfg.Atproto.StateTTL <= 0 {
		t.Errorf("StateTTL = %v, want a positive default", cfg.Atproto.StateTTL)
	}
	if cfg.Atproto.SkillCollection == "" {
		t.Error("SkillCollection default is empty")
	}
	if cfg.Atproto.HTTPTimeout <= 0 {
		t.Errorf("HTTPTimeout = %v, want a positive default", cfg.Atproto.HTTPTimeout)
	}
}

func TestAtprotoConfig_DerivedURLs(t *testing.T) {
	atp := &AtprotoConfig{PublicURL: "https://api.dreamtree.app/"}

	if got := atp.ClientMetadataURL(); got != "https://api.dreamtree.app/atproto/client-metadata.json" {
		t.Errorf("ClientMetadataURL() = %q", got)
	}
	if got := atp.CallbackURL(); got != "https://api.dreamtree.app/atproto/callback" {
		t.Errorf("CallbackURL() = %q", got)
	}
}
