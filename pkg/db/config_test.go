package db

import (
	"net/url"
	"testing"
)

func TestDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db.internal", Port: 5432, User: "svc", Password: "pw", DBName: "coupons", SSLMode: "disable"}
	if got, want := cfg.DSN(), "postgres://svc:pw@db.internal:5432/coupons?sslmode=disable"; got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestDSNEscapesCredentials(t *testing.T) {
	cfg := PostgresConfig{Host: "localhost", Port: 5433, User: "app@corp", Password: "p@ss/w:rd?#", DBName: "coupons", SSLMode: "require"}

	u, err := url.Parse(cfg.DSN())
	if err != nil {
		t.Fatalf("DSN does not parse: %v", err)
	}
	pw, _ := u.User.Password()
	if u.User.Username() != "app@corp" || pw != "p@ss/w:rd?#" {
		t.Errorf("credentials = %q %q", u.User.Username(), pw)
	}
	if u.Host != "localhost:5433" || u.Path != "/coupons" || u.Query().Get("sslmode") != "require" {
		t.Errorf("dsn parts = %q %q %q", u.Host, u.Path, u.RawQuery)
	}
}
