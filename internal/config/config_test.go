package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CEV_ADB", "CEV_REMOTE_PATH", "CEV_NATS_URL",
		"CEV_S3_BUCKET", "CEV_S3_KEY", "CEV_S3_REGION", "CEV_S3_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
	c := Load()
	if c.ADBPath != "adb" {
		t.Errorf("ADBPath = %q, want adb", c.ADBPath)
	}
	if c.S3Region != "us-east-1" {
		t.Errorf("S3Region = %q, want us-east-1", c.S3Region)
	}
	if c.RemotePath != "" || c.NATSURL != "" {
		t.Errorf("optional values should default empty: %+v", c)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CEV_ADB", "/opt/platform-tools/adb")
	t.Setenv("CEV_NATS_URL", "nats://127.0.0.1:4222")
	t.Setenv("CEV_S3_BUCKET", "device-logs")
	c := Load()
	if c.ADBPath != "/opt/platform-tools/adb" {
		t.Errorf("ADBPath = %q", c.ADBPath)
	}
	if c.NATSURL != "nats://127.0.0.1:4222" {
		t.Errorf("NATSURL = %q", c.NATSURL)
	}
	if c.S3Bucket != "device-logs" {
		t.Errorf("S3Bucket = %q", c.S3Bucket)
	}
}
