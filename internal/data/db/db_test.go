package db

import (
	"testing"

	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"":                       "storefront.db?_foreign_keys=1",
		"/tmp/a.db":              "/tmp/a.db?_foreign_keys=1",
		"file:x?mode=memory":     "file:x?mode=memory&_foreign_keys=1",
		"file:y?_foreign_keys=0": "file:y?_foreign_keys=0",
	}
	for in, want := range cases {
		if got := SQLiteDSN(in); got != want {
			t.Fatalf("SQLiteDSN(%q): got=%q want=%q", in, got, want)
		}
	}
}

func TestSQLiteServiceMigrates(t *testing.T) {
	svc, err := NewService(Config{
		Driver:     DriverSQLite,
		SQLitePath: "file:db_pkg_test?mode=memory&cache=shared",
	}, logger.Nop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if err := AutoMigrateAll(svc.DB()); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	if err := EnsureSearchIndexes(svc.DB()); err != nil {
		t.Fatalf("EnsureSearchIndexes on sqlite should be a no-op: %v", err)
	}
	for _, table := range []string{"collection", "product", "review", "cart", "cart_item", "customer_order", "order_item"} {
		if !svc.DB().Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestUnsupportedDriver(t *testing.T) {
	if _, err := NewService(Config{Driver: "mysql"}, logger.Nop()); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
