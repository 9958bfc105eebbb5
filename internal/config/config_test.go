package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.KafkaTopic != "loan.decisions" || c.KafkaGroupID != "loan-history-applier" {
		t.Fatalf("kafka defaults = %q / %q", c.KafkaTopic, c.KafkaGroupID)
	}
	if c.RateWindowHours != 24 || c.IdempTTLSecs != 300 {
		t.Fatalf("window/ttl defaults = %d / %d", c.RateWindowHours, c.IdempTTLSecs)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("RATE_WINDOW_HOURS", "12")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9000" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if len(c.KafkaBrokers) != 2 || c.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("KafkaBrokers = %v", c.KafkaBrokers)
	}
	if c.RateWindowHours != 12 || c.IdempTTLSecs != 60 {
		t.Fatalf("window/ttl = %d / %d", c.RateWindowHours, c.IdempTTLSecs)
	}
}

func TestValidate_Failures(t *testing.T) {
	base := func() *Config { return Load() }

	noHost := base()
	noHost.MySQLHost = ""
	if err := noHost.Validate(); err == nil {
		t.Fatal("missing mysql host accepted")
	}

	badPort := base()
	badPort.MySQLPort = "not-a-port"
	if err := badPort.Validate(); err == nil {
		t.Fatal("bad mysql port accepted")
	}

	noBrokers := base()
	noBrokers.KafkaBrokers = []string{""}
	if err := noBrokers.Validate(); err == nil {
		t.Fatal("empty kafka brokers accepted")
	}

	noTopic := base()
	noTopic.KafkaTopic = ""
	if err := noTopic.Validate(); err == nil {
		t.Fatal("empty kafka topic accepted")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{
		MySQLHost: "db.local", MySQLPort: "3306",
		MySQLDB: "loans", MySQLUser: "svc", MySQLPass: "secret",
	}
	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "svc:secret@tcp(db.local:3306)/loans?") {
		t.Fatalf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn %q missing parseTime", dsn)
	}
}
