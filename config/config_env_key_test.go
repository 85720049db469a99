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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Env.Timezone != "UTC" {
		t.Fatalf("Timezone = %q", cfg.Env.Timezone)
	}
	if cfg.Auth.Scheme != "encoded" {
		t.Fatalf("Auth.Scheme = %q", cfg.Auth.Scheme)
	}
	if cfg.History.DefaultDays != 30 || cfg.History.MaxDays != 60 {
		t.Fatalf("History = %+v", *cfg.History)
	}
	if cfg.PubSub == nil || cfg.Archive == nil {
		t.Fatal("PubSub and Archive must be non-nil")
	}
}

func TestApplyDefaults_ClampsDefaultHistoryToMax(t *testing.T) {
	cfg := &Config{History: &HistoryConfig{DefaultDays: 90, MaxDays: 14}}

	applyDefaults(cfg)

	if cfg.History.DefaultDays != 14 {
		t.Fatalf("DefaultDays = %d, want 14", cfg.History.DefaultDays)
	}
}
